// Package ingest implements the deduplicating folder-ingestion pipeline. It
// parses every statement file in a folder, excludes statements already seen
// in earlier runs or earlier in the same run, and aggregates the survivors
// into flat tables together with a per-file run report.
package ingest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/khorevkp/KK-Tools/internal/camtparser"
	"github.com/khorevkp/KK-Tools/internal/dateutils"
	"github.com/khorevkp/KK-Tools/internal/models"
	"github.com/khorevkp/KK-Tools/internal/parsererror"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		camtparser.SetLogger(logger)
	}
}

// Per-file status values of the run report.
const (
	StatusOK        = "ok"
	StatusDuplicate = "duplicate"
)

// Result carries everything one folder ingestion produced. Seen is the
// updated identity set; the caller persists it and passes it back on the
// next invocation, the engine itself holds no state between calls.
type Result struct {
	RunID        string
	Files        []models.FileReportRow
	Statements   []models.StatementRow
	Balances     []models.BalanceRow
	Transactions []models.TransactionRow
	Duplicates   []models.DuplicateRow
	Seen         models.IdentitySet
}

// IngestFolder processes every regular file in folderPath. Parse failures of
// a single file are downgraded to a per-file report entry and never abort
// the batch. Statement ids in previous, or already accumulated earlier in
// this run, are classified duplicates: their statement, balance and
// transaction rows are excluded from the aggregated tables, while their
// presence is still recorded in the duplicates report.
func IngestFolder(folderPath string, previous models.IdentitySet) (*Result, error) {
	dirEntries, err := os.ReadDir(folderPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &parsererror.NotFoundError{Path: folderPath}
		}
		return nil, err
	}

	result := &Result{
		RunID: uuid.New().String(),
		Seen:  previous.Clone(),
	}

	log.WithFields(logrus.Fields{
		"folder": folderPath,
		"run":    result.RunID,
		"known":  len(result.Seen),
	}).Info("Ingesting statement folder")

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		ingestFile(filepath.Join(folderPath, dirEntry.Name()), dirEntry.Name(), result)
	}

	normalizeDates(result.Transactions)

	log.WithFields(logrus.Fields{
		"run":          result.RunID,
		"files":        len(result.Files),
		"statements":   len(result.Statements),
		"transactions": len(result.Transactions),
		"duplicates":   len(result.Duplicates),
	}).Info("Folder ingestion finished")

	return result, nil
}

func ingestFile(filePath, fileName string, result *Result) {
	statements, entries, err := camtparser.ParseFile(filePath)
	if err != nil {
		log.WithError(err).WithField("file", fileName).Warn("Failed to parse statement file")
		result.Files = append(result.Files, models.FileReportRow{
			FileName: fileName,
			Status:   "failed: " + err.Error(),
		})
		return
	}

	// First occurrence wins, whether the repeat comes from a prior run or
	// from a file earlier in this one.
	var newIDs []string
	duplicate := false
	for _, stmt := range statements {
		if result.Seen.Has(stmt.ID) {
			duplicate = true
			continue
		}
		newIDs = append(newIDs, stmt.ID)
		result.Seen.Add(stmt.ID)
	}

	fresh := models.NewIdentitySet(newIDs...)
	kept := filterStatements(statements, fresh)
	result.Statements = append(result.Statements, camtparser.StatementRows(kept)...)
	result.Balances = append(result.Balances, camtparser.BalanceRows(kept)...)
	result.Transactions = append(result.Transactions, camtparser.TransactionRows(filterEntries(entries, fresh))...)

	status := StatusOK
	if duplicate {
		status = StatusDuplicate
		result.Duplicates = append(result.Duplicates, models.DuplicateRow{
			FileName:        fileName,
			NewStatementIDs: strings.Join(newIDs, " "),
		})
	}

	result.Files = append(result.Files, models.FileReportRow{
		FileName: fileName,
		Accounts: accountList(statements),
		Status:   status,
	})
}

func filterStatements(statements []models.Statement, keep models.IdentitySet) []models.Statement {
	out := make([]models.Statement, 0, len(statements))
	for _, stmt := range statements {
		if keep.Has(stmt.ID) {
			out = append(out, stmt)
		}
	}
	return out
}

func filterEntries(entries []models.Entry, keep models.IdentitySet) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if keep.Has(e.StatementID) {
			out = append(out, e)
		}
	}
	return out
}

func accountList(statements []models.Statement) string {
	seen := map[string]struct{}{}
	var accounts []string
	for _, stmt := range statements {
		if stmt.AccountID == "" {
			continue
		}
		if _, ok := seen[stmt.AccountID]; ok {
			continue
		}
		seen[stmt.AccountID] = struct{}{}
		accounts = append(accounts, stmt.AccountID)
	}
	return strings.Join(accounts, ", ")
}

// normalizeDates rewrites the booking and value date columns into canonical
// ISO form. Malformed date strings become empty markers instead of aborting
// the run.
func normalizeDates(rows []models.TransactionRow) {
	for i := range rows {
		if normalized := dateutils.NormalizeISO(rows[i].BookingDate); normalized != rows[i].BookingDate {
			if normalized == "" && rows[i].BookingDate != "" {
				log.WithField("date", rows[i].BookingDate).Warn("Unparseable booking date")
			}
			rows[i].BookingDate = normalized
		}
		if normalized := dateutils.NormalizeISO(rows[i].ValueDate); normalized != rows[i].ValueDate {
			if normalized == "" && rows[i].ValueDate != "" {
				log.WithField("date", rows[i].ValueDate).Warn("Unparseable value date")
			}
			rows[i].ValueDate = normalized
		}
	}
}
