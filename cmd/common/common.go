// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/khorevkp/KK-Tools/internal/export"
)

// WriteOrPrint writes a table to the given CSV file, or prints it to standard
// output when no output path is set.
func WriteOrPrint[TRow any](rows []TRow, outputPath string, log *logrus.Logger) {
	if outputPath == "" {
		if err := export.RenderCSV(rows, os.Stdout); err != nil {
			log.Fatalf("Error printing table: %v", err)
		}
		return
	}
	WriteTable(rows, outputPath, log)
	fmt.Printf("Parsed data saved to %s\n", outputPath)
}

// WriteTable writes a table to a CSV file, aborting the command on failure.
func WriteTable[TRow any](rows []TRow, path string, log *logrus.Logger) {
	if err := export.WriteCSV(rows, path); err != nil {
		log.Fatalf("Error writing %s: %v", path, err)
	}
}
