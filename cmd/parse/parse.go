// Package parse handles single-file parsing commands
package parse

import (
	"github.com/spf13/cobra"

	"github.com/khorevkp/KK-Tools/cmd/common"
	"github.com/khorevkp/KK-Tools/cmd/root"
	"github.com/khorevkp/KK-Tools/internal/camtparser"
	"github.com/khorevkp/KK-Tools/internal/fileutils"
	"github.com/khorevkp/KK-Tools/internal/painparser"
)

var fileType string

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a single statement or payment file",
	Long: `Parse a single bank statement (camt) or payment initiation (pain001)
file and print the resulting table, or write it to a CSV file.`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&fileType, "type", "t", "", "Type of the file: camt or pain001 (required)")
	_ = Cmd.MarkFlagRequired("type")
}

func parseFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if !fileutils.FileExists(input) {
		root.Log.Fatalf("The specified input file does not exist: %s", input)
	}

	switch fileType {
	case "camt":
		statements, _, err := camtparser.ParseFile(input)
		if err != nil {
			root.Log.Fatalf("Error parsing statement file: %v", err)
		}
		common.WriteOrPrint(camtparser.BalanceSummary(statements), root.SharedFlags.Output, root.Log)
	case "pain001":
		payments, err := painparser.ParseFile(input)
		if err != nil {
			root.Log.Fatalf("Error parsing payment file: %v", err)
		}
		stats := painparser.Stats(payments)
		root.Log.Infof("Number of batches: %d", stats.BatchCount)
		root.Log.Infof("Total number of payments: %d", stats.PaymentCount)
		common.WriteOrPrint(payments, root.SharedFlags.Output, root.Log)
	default:
		root.Log.Fatalf("Unsupported file type: %s (choices: camt, pain001)", fileType)
	}
}
