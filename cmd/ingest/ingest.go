// Package ingest handles the deduplicating folder-ingestion command
package ingest

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khorevkp/KK-Tools/cmd/common"
	"github.com/khorevkp/KK-Tools/cmd/root"
	"github.com/khorevkp/KK-Tools/internal/ingest"
)

var seenFile string

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a folder of statement files with deduplication",
	Long: `Ingest every statement file in a folder, skip statements already seen
in previous runs, and write the aggregated tables and the run report.`,
	Run: ingestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&seenFile, "seen", "s", "seen_statements.txt", "File carrying statement ids across runs")
}

func ingestFunc(cmd *cobra.Command, args []string) {
	previous, err := ingest.LoadIdentityFile(seenFile)
	if err != nil {
		root.Log.Fatalf("Error loading identity file: %v", err)
	}

	result, err := ingest.IngestFolder(root.SharedFlags.Input, previous)
	if err != nil {
		root.Log.Fatalf("Error ingesting folder: %v", err)
	}

	outDir := root.SharedFlags.Output
	if outDir == "" {
		outDir = "."
	}
	common.WriteTable(result.Statements, filepath.Join(outDir, "statements.csv"), root.Log)
	common.WriteTable(result.Balances, filepath.Join(outDir, "balances.csv"), root.Log)
	common.WriteTable(result.Transactions, filepath.Join(outDir, "transactions.csv"), root.Log)
	common.WriteTable(result.Files, filepath.Join(outDir, "files.csv"), root.Log)
	common.WriteTable(result.Duplicates, filepath.Join(outDir, "duplicates.csv"), root.Log)

	if err := ingest.SaveIdentityFile(seenFile, result.Seen); err != nil {
		root.Log.Fatalf("Error saving identity file: %v", err)
	}
	root.Log.Infof("Ingestion run %s completed: %d files, %d new statements, %d duplicates",
		result.RunID, len(result.Files), len(result.Statements), len(result.Duplicates))
}
