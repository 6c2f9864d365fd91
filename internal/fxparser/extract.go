package fxparser

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/khorevkp/KK-Tools/internal/fileutils"
	"github.com/khorevkp/KK-Tools/internal/models"
	"github.com/khorevkp/KK-Tools/internal/parsererror"
)

// ExtractFolder parses every trade-confirmation file in sourceDir and splits
// the results into forwards and swaps, shaped for the FIS upload. Parsed
// files are moved into archiveDir; files that fail to parse are left in
// place and logged, and never abort the batch. Non-file entries are skipped.
func ExtractFolder(sourceDir, archiveDir, companyCode string, buMap, cpMap map[string]string) ([]models.ForwardFISRow, []models.SwapFISRow, error) {
	dirEntries, err := os.ReadDir(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, &parsererror.NotFoundError{Path: sourceDir}
		}
		return nil, nil, err
	}

	var forwards []models.ForwardFISRow
	var swaps []models.SwapFISRow
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		filePath := filepath.Join(sourceDir, dirEntry.Name())

		trade, err := ParseFile(filePath, companyCode)
		if err != nil {
			log.WithError(err).WithField("file", dirEntry.Name()).Warn("Could not parse trade file, skipping")
			continue
		}

		switch {
		case trade.Kind == models.TradeOutright:
			forwards = append(forwards, ToForwardFIS(trade, buMap, cpMap))
		case trade.Kind == models.TradeSwap:
			swaps = append(swaps, ToSwapFIS(trade, buMap, cpMap))
		default:
			log.WithFields(logrus.Fields{
				"file":    dirEntry.Name(),
				"product": string(trade.Kind),
			}).Warn("Unsupported trade product, archiving without conversion")
		}

		if err := fileutils.MoveFile(filePath, archiveDir); err != nil {
			log.WithError(err).WithField("file", dirEntry.Name()).Warn("Failed to archive trade file")
		}
	}

	log.WithFields(logrus.Fields{
		"forwards": len(forwards),
		"swaps":    len(swaps),
	}).Info("Extracted trades from folder")

	return forwards, swaps, nil
}
