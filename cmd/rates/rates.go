// Package rates handles the FX reference-rate command
package rates

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/khorevkp/KK-Tools/cmd/common"
	"github.com/khorevkp/KK-Tools/cmd/root"
	"github.com/khorevkp/KK-Tools/internal/rates"
)

var history bool

// Cmd represents the rates command
var Cmd = &cobra.Command{
	Use:   "rates",
	Short: "Fetch FX reference rates",
	Long:  `Fetch the latest (or 90-day historical) FX reference rates.`,
	Run:   ratesFunc,
}

func init() {
	Cmd.Flags().BoolVar(&history, "history", false, "Fetch the 90-day history instead of the daily rates")
}

func ratesFunc(cmd *cobra.Command, args []string) {
	client := rates.NewClient(time.Duration(root.Cfg.Rates.TimeoutSeconds) * time.Second)
	client.DailyURL = root.Cfg.Rates.DailyURL
	client.HistoryURL = root.Cfg.Rates.HistoryURL

	fetch := client.DailyRates
	if history {
		fetch = client.HistoricalRates
	}
	rateList, err := fetch()
	if err != nil {
		root.Log.Fatalf("Error fetching reference rates: %v", err)
	}
	common.WriteOrPrint(rateList, root.SharedFlags.Output, root.Log)
}
