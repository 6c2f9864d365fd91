// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/khorevkp/KK-Tools/internal/camtparser"
	"github.com/khorevkp/KK-Tools/internal/config"
	"github.com/khorevkp/KK-Tools/internal/export"
	"github.com/khorevkp/KK-Tools/internal/fxparser"
	"github.com/khorevkp/KK-Tools/internal/ingest"
	"github.com/khorevkp/KK-Tools/internal/painparser"
	"github.com/khorevkp/KK-Tools/internal/rates"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "kktools",
		Short: "A CLI tool to convert treasury messages into flat tables.",
		Long: `kktools converts ISO 20022 bank statements (camt), payment initiations
(pain.001) and 360T FX trade confirmations into flat tables for accounting
systems, with deduplicating folder ingestion and FIS upload workbooks.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to kktools!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}

			// Set the configured logger for all parsers
			camtparser.SetLogger(Log)
			painparser.SetLogger(Log)
			fxparser.SetLogger(Log)
			ingest.SetLogger(Log)
			rates.SetLogger(Log)
			export.SetLogger(Log)
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or folder")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or folder")
}
