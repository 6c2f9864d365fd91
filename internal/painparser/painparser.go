// Package painparser decodes ISO 20022 payment-initiation messages
// (pain.001) into individual payment instructions.
package painparser

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"

	"github.com/khorevkp/KK-Tools/internal/currencyutils"
	"github.com/khorevkp/KK-Tools/internal/fileutils"
	"github.com/khorevkp/KK-Tools/internal/models"
	"github.com/khorevkp/KK-Tools/internal/parsererror"
	"github.com/khorevkp/KK-Tools/internal/xmlutils"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parse decodes one payment-initiation message into its payment instructions.
// Every instruction carries the header fields of its enclosing batch;
// instruction fields are never overridden by batch fields.
func Parse(raw string) ([]models.Payment, error) {
	return parse(raw, "document")
}

// ParseFile reads and decodes one payment-initiation file.
func ParseFile(xmlFilePath string) ([]models.Payment, error) {
	if !fileutils.FileExists(xmlFilePath) {
		return nil, &parsererror.NotFoundError{Path: xmlFilePath}
	}
	raw, err := fileutils.ReadFileText(xmlFilePath)
	if err != nil {
		return nil, err
	}
	return parse(raw, xmlFilePath)
}

// Stats summarizes a parsed payment list per batch id.
func Stats(payments []models.Payment) models.PaymentStats {
	batches := map[string]struct{}{}
	for _, p := range payments {
		batches[p.BatchID] = struct{}{}
	}
	return models.PaymentStats{
		BatchCount:   len(batches),
		PaymentCount: len(payments),
	}
}

func parse(raw, source string) ([]models.Payment, error) {
	root, err := xmlutils.ParseDocument(raw)
	if err != nil {
		return nil, &parsererror.MalformedDocumentError{Source: source, Err: err}
	}

	var payments []models.Payment
	batches := xmlutils.Nodes(root, "//PmtInf")
	for _, batch := range batches {
		batchPayments, err := parseBatch(batch)
		if err != nil {
			return nil, err
		}
		payments = append(payments, batchPayments...)
	}

	log.WithFields(logrus.Fields{
		"source":   source,
		"batches":  len(batches),
		"payments": len(payments),
	}).Info("Parsed payment-initiation message")

	return payments, nil
}

func parseBatch(batch *xmlpath.Node) ([]models.Payment, error) {
	header := models.BatchHeader{
		BatchID:       xmlutils.FirstMatch(batch, "PmtInfId"),
		DebtorName:    xmlutils.FirstMatch(batch, "Dbtr/Nm"),
		DebtorAccount: xmlutils.FirstMatch(batch, "DbtrAcct/Id/IBAN", "DbtrAcct/Id/Othr/Id"),
		ExecutionDate: xmlutils.FirstMatch(batch, "ReqdExctnDt", "ReqdExctnDt/Dt"),
	}

	var payments []models.Payment
	for _, instr := range xmlutils.Nodes(batch, "CdtTrfTxInf") {
		payment, err := parseInstruction(instr, header)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// parseInstruction extracts one credit-transfer instruction. The amount is
// the only required field; everything else defaults independently.
func parseInstruction(instr *xmlpath.Node, header models.BatchHeader) (models.Payment, error) {
	amountStr := xmlutils.FirstMatch(instr, "Amt/InstdAmt")
	amount, err := currencyutils.ParseAmount(amountStr)
	if err != nil {
		return models.Payment{}, fmt.Errorf("batch %s: instructed amount: %w", header.BatchID, err)
	}

	return models.Payment{
		Name:            xmlutils.FirstMatch(instr, "Cdtr/Nm"),
		Amount:          amount,
		Currency:        xmlutils.FirstMatch(instr, "Amt/InstdAmt/@Ccy"),
		Reference:       xmlutils.JoinMatches(instr, "RmtInf/Ustrd"),
		Country:         xmlutils.FirstMatch(instr, "Cdtr/PstlAdr/Ctry"),
		Address:         xmlutils.JoinMatches(instr, "Cdtr/PstlAdr/AdrLine"),
		CreditorAccount: xmlutils.FirstMatch(instr, "CdtrAcct/Id/IBAN", "CdtrAcct/Id/Othr/Id"),
		BIC:             xmlutils.FirstMatch(instr, "CdtrAgt/FinInstnId/BIC", "CdtrAgt/FinInstnId/BICFI"),
		EndToEndID:      xmlutils.FirstMatch(instr, "PmtId/EndToEndId"),
		InstructionID:   xmlutils.FirstMatch(instr, "PmtId/InstrId"),
		BatchID:         header.BatchID,
		DebtorName:      header.DebtorName,
		DebtorAccount:   header.DebtorAccount,
		ExecutionDate:   header.ExecutionDate,
	}, nil
}
