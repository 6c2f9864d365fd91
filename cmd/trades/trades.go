// Package trades handles the FX trade-confirmation extraction command
package trades

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/khorevkp/KK-Tools/cmd/root"
	"github.com/khorevkp/KK-Tools/internal/config"
	"github.com/khorevkp/KK-Tools/internal/export"
	"github.com/khorevkp/KK-Tools/internal/fxparser"
)

var (
	archiveDir  string
	companyCode string
)

// Cmd represents the trades command
var Cmd = &cobra.Command{
	Use:   "trades",
	Short: "Extract FX trade confirmations into FIS upload workbooks",
	Long: `Parse every 360T trade confirmation in a folder, archive the parsed
files and write timestamped forwards and swaps workbooks.`,
	Run: tradesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&archiveDir, "archive", "a", "", "Folder parsed confirmations are moved to (required)")
	Cmd.Flags().StringVarP(&companyCode, "company", "c", "", "Reporting entity code (default from configuration)")
	_ = Cmd.MarkFlagRequired("archive")
}

func tradesFunc(cmd *cobra.Command, args []string) {
	code := companyCode
	if code == "" {
		code = root.Cfg.FIS.CompanyCode
	}
	mappings, err := config.LoadMappings(root.Cfg.FIS.MappingsFile)
	if err != nil {
		root.Log.Fatalf("Error loading FIS mappings: %v", err)
	}

	forwards, swaps, err := fxparser.ExtractFolder(root.SharedFlags.Input, archiveDir, code,
		mappings.BusinessUnits, mappings.Counterparties)
	if err != nil {
		root.Log.Fatalf("Error extracting trades: %v", err)
	}

	outDir := root.SharedFlags.Output
	if outDir == "" {
		outDir = "."
	}
	stamp := time.Now().Format("20060102150405")
	if len(forwards) > 0 {
		file := filepath.Join(outDir, stamp+"_forwards.xlsx")
		if err := export.WriteXLSX(forwards, file, "Spot_Fwd", root.Cfg.Export.MaxColumnWidth); err != nil {
			root.Log.Fatalf("Error writing forwards workbook: %v", err)
		}
	}
	if len(swaps) > 0 {
		file := filepath.Join(outDir, stamp+"_swaps.xlsx")
		if err := export.WriteXLSX(swaps, file, "Swap", root.Cfg.Export.MaxColumnWidth); err != nil {
			root.Log.Fatalf("Error writing swaps workbook: %v", err)
		}
	}
	root.Log.Infof("Extracted %d forwards and %d swaps", len(forwards), len(swaps))
}
