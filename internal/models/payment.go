package models

import "github.com/shopspring/decimal"

// BatchHeader carries the fields shared by every instruction of a payment
// batch. They are merged into each Payment; instruction fields win on
// collision.
type BatchHeader struct {
	BatchID       string
	DebtorName    string
	DebtorAccount string
	ExecutionDate string
}

// Payment represents one credit-transfer instruction of a pain.001 message,
// combined with the header of its enclosing batch.
type Payment struct {
	Name            string          `csv:"Name"`
	Amount          decimal.Decimal `csv:"Amount"`
	Currency        string          `csv:"Currency"`
	Reference       string          `csv:"Reference"`
	Country         string          `csv:"Country"`
	Address         string          `csv:"Address"`
	CreditorAccount string          `csv:"CreditorAccount"`
	BIC             string          `csv:"BIC"`
	EndToEndID      string          `csv:"EndToEndId"`
	InstructionID   string          `csv:"InstructionId"`
	BatchID         string          `csv:"BatchId"`
	DebtorName      string          `csv:"DebtorName"`
	DebtorAccount   string          `csv:"DebtorAccount"`
	ExecutionDate   string          `csv:"ExecutionDate"`
}

// PaymentStats summarizes a parsed pain.001 document.
type PaymentStats struct {
	BatchCount   int
	PaymentCount int
}
