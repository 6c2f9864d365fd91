// Package camtparser decodes ISO 20022 bank-statement messages (camt.053
// bank-to-customer statements and the single-report camt.052 variant) into
// statement headers, typed balances and transaction entries.
package camtparser

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"

	"github.com/khorevkp/KK-Tools/internal/currencyutils"
	"github.com/khorevkp/KK-Tools/internal/fileutils"
	"github.com/khorevkp/KK-Tools/internal/models"
	"github.com/khorevkp/KK-Tools/internal/parsererror"
	"github.com/khorevkp/KK-Tools/internal/xmlutils"

	"github.com/shopspring/decimal"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		xmlutils.SetLogger(logger)
	}
}

// balanceDescriptions resolves the 3-letter balance codes carried by a
// statement. Codes outside this table map to "Unknown code".
var balanceDescriptions = map[string]string{
	"OPBD": "Opening booked",
	"OPAV": "Opening available",
	"CLBD": "Closing booked",
	"CLAV": "Closing available",
	"PRCD": "Previously closed booked",
	"FWAV": "Forward available",
}

// statementBlockPaths locates statement-level blocks in both supported
// dialects: the multi-statement camt.053 report and the single-report
// camt.052 variant.
var statementBlockPaths = []string{
	"//BkToCstmrStmt/Stmt",
	"//BkToCstmrAcctRpt/Rpt",
}

// Parse decodes one bank-statement message into statement headers and
// transaction entries, both in source document order.
//
// A document that cannot be parsed as XML fails with MalformedDocumentError;
// a well-formed document without statement blocks fails with
// NoStatementsError so that wrong-message-type input stays distinguishable
// from corrupt input.
func Parse(raw string) ([]models.Statement, []models.Entry, error) {
	return parse(raw, "document")
}

// ParseFile reads and decodes one bank-statement file.
func ParseFile(xmlFilePath string) ([]models.Statement, []models.Entry, error) {
	if !fileutils.FileExists(xmlFilePath) {
		return nil, nil, &parsererror.NotFoundError{Path: xmlFilePath}
	}
	raw, err := fileutils.ReadFileText(xmlFilePath)
	if err != nil {
		return nil, nil, err
	}
	return parse(raw, xmlFilePath)
}

func parse(raw, source string) ([]models.Statement, []models.Entry, error) {
	root, err := xmlutils.ParseDocument(raw)
	if err != nil {
		return nil, nil, &parsererror.MalformedDocumentError{Source: source, Err: err}
	}

	var blocks []*xmlpath.Node
	for _, path := range statementBlockPaths {
		blocks = xmlutils.Nodes(root, path)
		if len(blocks) > 0 {
			break
		}
	}
	if len(blocks) == 0 {
		return nil, nil, &parsererror.NoStatementsError{Source: source}
	}

	var statements []models.Statement
	var entries []models.Entry
	for _, block := range blocks {
		stmt, stmtEntries, err := parseStatement(block)
		if err != nil {
			return nil, nil, err
		}
		statements = append(statements, stmt)
		entries = append(entries, stmtEntries...)
	}

	log.WithFields(logrus.Fields{
		"source":       source,
		"statements":   len(statements),
		"transactions": len(entries),
	}).Info("Parsed bank-statement message")

	return statements, entries, nil
}

// parseStatement extracts one statement block: header, balances, entries and
// the per-statement transaction summary.
func parseStatement(block *xmlpath.Node) (models.Statement, []models.Entry, error) {
	stmt := models.Statement{
		ID:        xmlutils.FirstMatch(block, "Id"),
		AccountID: xmlutils.FirstMatch(block, "Acct/Id/IBAN", "Acct/Id/Othr/Id"),
		OwnerName: xmlutils.FirstMatch(block, "Acct/Ownr/Nm"),
		Balances:  map[string]models.Balance{},
	}

	for _, bal := range xmlutils.Nodes(block, "Bal") {
		b := parseBalance(bal)
		stmt.Balances[b.Code] = b
	}

	var entries []models.Entry
	total := decimal.Zero
	for _, ntry := range xmlutils.Nodes(block, "Ntry") {
		entry, err := parseEntry(ntry, stmt)
		if err != nil {
			return models.Statement{}, nil, err
		}
		entries = append(entries, entry)
		total = total.Add(entry.Amount)
	}
	stmt.TransactionCount = len(entries)
	stmt.TransactionTotal = total

	return stmt, entries, nil
}

func parseBalance(bal *xmlpath.Node) models.Balance {
	code := xmlutils.FirstMatch(bal, "Tp/CdOrPrtry/Cd")
	description, ok := balanceDescriptions[code]
	if !ok {
		description = "Unknown code"
	}

	amount := decimal.Zero
	if amountStr := xmlutils.FirstMatch(bal, "Amt"); amountStr != "" {
		parsed, err := currencyutils.ParseAmount(amountStr)
		if err != nil {
			log.WithError(err).WithField("code", code).Warn("Failed to parse balance amount")
		} else {
			amount = parsed
		}
	}

	indicator := xmlutils.FirstMatch(bal, "CdtDbtInd")
	if indicator == "DBIT" {
		amount = amount.Neg()
	}

	return models.Balance{
		Code:        code,
		Description: description,
		Indicator:   indicator,
		Amount:      amount,
		Currency:    xmlutils.FirstMatch(bal, "Amt/@Ccy"),
		Date:        xmlutils.FirstMatch(bal, "Dt/Dt", "Dt/DtTm"),
	}
}

// parseEntry extracts one transaction entry. Every field except the amount is
// optional and defaults independently to an empty string.
func parseEntry(ntry *xmlpath.Node, stmt models.Statement) (models.Entry, error) {
	amountStr := xmlutils.FirstMatch(ntry, "Amt")
	amount, err := currencyutils.ParseAmount(amountStr)
	if err != nil {
		return models.Entry{}, fmt.Errorf("statement %s: entry amount: %w", stmt.ID, err)
	}

	indicator := xmlutils.FirstMatch(ntry, "CdtDbtInd")
	if indicator == "DBIT" {
		amount = amount.Neg()
	}

	return models.Entry{
		StatementID: stmt.ID,
		AccountID:   stmt.AccountID,
		Amount:      amount,
		Currency:    xmlutils.FirstMatch(ntry, "Amt/@Ccy"),
		CreditDebit: indicator,

		// Party names occur at two nesting depths depending on the
		// message version.
		DebtorName: xmlutils.FirstMatch(ntry,
			"NtryDtls/TxDtls/RltdPties/Dbtr/Nm",
			"NtryDtls/TxDtls/RltdPties/Dbtr/Pty/Nm"),
		CreditorName: xmlutils.FirstMatch(ntry,
			"NtryDtls/TxDtls/RltdPties/Cdtr/Nm",
			"NtryDtls/TxDtls/RltdPties/Cdtr/Pty/Nm"),
		DebtorAccount: xmlutils.FirstMatch(ntry,
			"NtryDtls/TxDtls/RltdPties/DbtrAcct/Id/IBAN",
			"NtryDtls/TxDtls/RltdPties/DbtrAcct/Id/Othr/Id"),
		CreditorAccount: xmlutils.FirstMatch(ntry,
			"NtryDtls/TxDtls/RltdPties/CdtrAcct/Id/IBAN",
			"NtryDtls/TxDtls/RltdPties/CdtrAcct/Id/Othr/Id"),

		Reference:      xmlutils.JoinMatches(ntry, "NtryDtls/TxDtls/RmtInf/Ustrd"),
		AdditionalInfo: xmlutils.FirstMatch(ntry, "AddtlNtryInf"),

		Domain:            xmlutils.FirstMatch(ntry, "BkTxCd/Domn/Cd"),
		Family:            xmlutils.FirstMatch(ntry, "BkTxCd/Domn/Fmly/Cd"),
		SubFamily:         xmlutils.FirstMatch(ntry, "BkTxCd/Domn/Fmly/SubFmlyCd"),
		ProprietaryCode:   xmlutils.FirstMatch(ntry, "BkTxCd/Prtry/Cd"),
		ProprietaryIssuer: xmlutils.FirstMatch(ntry, "BkTxCd/Prtry/Issr"),

		BookingDate: xmlutils.FirstMatch(ntry, "BookgDt/Dt", "BookgDt/DtTm"),
		ValueDate:   xmlutils.FirstMatch(ntry, "ValDt/Dt", "ValDt/DtTm"),

		InstructionID: xmlutils.FirstMatch(ntry,
			"NtryDtls/TxDtls/Refs/InstrId"),
		PaymentInfoID: xmlutils.FirstMatch(ntry,
			"NtryDtls/TxDtls/Refs/PmtInfId",
			"NtryDtls/Btch/PmtInfId"),
		EndToEndID: xmlutils.FirstMatch(ntry,
			"NtryDtls/TxDtls/Refs/EndToEndId"),
		AccountServicerRef: xmlutils.FirstMatch(ntry,
			"AcctSvcrRef",
			"NtryDtls/TxDtls/Refs/AcctSvcrRef"),
	}, nil
}

// ValidateFormat checks whether a file parses as a bank-statement message
// with at least one statement block.
func ValidateFormat(xmlFilePath string) (bool, error) {
	if !fileutils.FileExists(xmlFilePath) {
		return false, &parsererror.NotFoundError{Path: xmlFilePath}
	}
	raw, err := fileutils.ReadFileText(xmlFilePath)
	if err != nil {
		return false, err
	}
	root, err := xmlutils.ParseDocument(raw)
	if err != nil {
		return false, nil
	}
	for _, path := range statementBlockPaths {
		if len(xmlutils.Nodes(root, path)) > 0 {
			return true, nil
		}
	}
	return false, nil
}
