// Package models provides the data structures shared by the parsers, the
// ingestion pipeline and the exporters.
package models

import (
	"github.com/shopspring/decimal"
)

// Balance represents one typed balance of a statement.
type Balance struct {
	Code        string          // 3-letter balance code (OPBD, CLBD, ...)
	Description string          // resolved description, "Unknown code" for unrecognized codes
	Indicator   string          // CRDT or DBIT
	Amount      decimal.Decimal // signed: negative when Indicator is DBIT
	Currency    string
	Date        string
}

// Statement represents the header of one bank statement or account report.
// Each balance code appears at most once per statement.
type Statement struct {
	ID               string
	AccountID        string
	OwnerName        string
	Balances         map[string]Balance
	TransactionCount int
	TransactionTotal decimal.Decimal
}

// Balance returns the balance for the given code and whether it is present.
func (s Statement) Balance(code string) (Balance, bool) {
	b, ok := s.Balances[code]
	return b, ok
}

// Entry represents one transaction entry of a statement. The back-reference
// to its statement is carried by id, not by ownership.
type Entry struct {
	StatementID string
	AccountID   string

	Amount      decimal.Decimal // signed: negative when CreditDebit is DBIT
	Currency    string
	CreditDebit string

	DebtorName      string
	DebtorAccount   string
	CreditorName    string
	CreditorAccount string

	Reference      string // all unstructured remittance fragments, space-joined
	AdditionalInfo string

	Domain            string
	Family            string
	SubFamily         string
	ProprietaryCode   string
	ProprietaryIssuer string

	BookingDate string
	ValueDate   string

	InstructionID      string
	PaymentInfoID      string
	EndToEndID         string
	AccountServicerRef string
}
