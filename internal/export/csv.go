// Package export writes the aggregated tables to CSV files, spreadsheets or
// standard output. Presentation only, the parsers and the pipeline never
// depend on it.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/khorevkp/KK-Tools/internal/fileutils"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteCSV writes a table to a CSV file, creating parent directories as
// needed. rows must be a slice of structs carrying csv tags.
func WriteCSV[TRow any](rows []TRow, csvFile string) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		return err
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(rows),
	}).Info("Wrote table to CSV file")
	return nil
}

// RenderCSV writes a table as CSV text to the given writer, used by the CLI
// to print parsed tables to standard output.
func RenderCSV[TRow any](rows []TRow, w io.Writer) error {
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fmt.Errorf("error rendering CSV data: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
