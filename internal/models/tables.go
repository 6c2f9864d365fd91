package models

import "github.com/shopspring/decimal"

// StatementRow is one row of the aggregated statements table.
type StatementRow struct {
	StatementID      string          `csv:"StatementId"`
	AccountID        string          `csv:"AccountId"`
	OwnerName        string          `csv:"OwnerName"`
	TransactionCount int             `csv:"TransactionCount"`
	TotalAmount      decimal.Decimal `csv:"TotalAmount"`
}

// BalanceRow is one row of the aggregated balances table, one per balance
// code per statement.
type BalanceRow struct {
	StatementID string          `csv:"StatementId"`
	AccountID   string          `csv:"AccountId"`
	Code        string          `csv:"Code"`
	Description string          `csv:"Description"`
	Indicator   string          `csv:"Indicator"`
	Amount      decimal.Decimal `csv:"Amount"`
	Currency    string          `csv:"Currency"`
	Date        string          `csv:"Date"`
}

// BalanceSummaryRow is the derived 8-column balances view.
type BalanceSummaryRow struct {
	StatementID      string          `csv:"StatementId"`
	AccountID        string          `csv:"AccountId"`
	Currency         string          `csv:"Currency"`
	OpeningBalance   decimal.Decimal `csv:"OpeningBalance"`
	ClosingBalance   decimal.Decimal `csv:"ClosingBalance"`
	Date             string          `csv:"Date"`
	TransactionCount int             `csv:"TransactionCount"`
	TotalAmount      decimal.Decimal `csv:"TotalAmount"`
}

// TransactionRow is one row of the aggregated transactions table.
type TransactionRow struct {
	StatementID        string          `csv:"StatementId"`
	AccountID          string          `csv:"AccountId"`
	Amount             decimal.Decimal `csv:"Amount"`
	Currency           string          `csv:"Currency"`
	CreditDebit        string          `csv:"CreditDebit"`
	DebtorName         string          `csv:"DebtorName"`
	DebtorAccount      string          `csv:"DebtorAccount"`
	CreditorName       string          `csv:"CreditorName"`
	CreditorAccount    string          `csv:"CreditorAccount"`
	Reference          string          `csv:"Reference"`
	AdditionalInfo     string          `csv:"AdditionalInfo"`
	Domain             string          `csv:"Domain"`
	Family             string          `csv:"Family"`
	SubFamily          string          `csv:"SubFamily"`
	ProprietaryCode    string          `csv:"ProprietaryCode"`
	ProprietaryIssuer  string          `csv:"ProprietaryIssuer"`
	BookingDate        string          `csv:"BookingDate"`
	ValueDate          string          `csv:"ValueDate"`
	InstructionID      string          `csv:"InstructionId"`
	PaymentInfoID      string          `csv:"PaymentInfoId"`
	EndToEndID         string          `csv:"EndToEndId"`
	AccountServicerRef string          `csv:"AccountServicerRef"`
}

// FileReportRow is one row of the per-file ingestion report.
type FileReportRow struct {
	FileName string `csv:"FileName"`
	Accounts string `csv:"Accounts"`
	Status   string `csv:"Status"`
}

// DuplicateRow records a file that repeated already-known statement ids.
// NewStatementIDs lists the ids of that file that were still new, since a
// single file may contain a mix of new and known statements.
type DuplicateRow struct {
	FileName        string `csv:"FileName"`
	NewStatementIDs string `csv:"NewStatementIds"`
}

// ForwardFISRow is the 14-column FIS upload layout for outright forwards.
type ForwardFISRow struct {
	SpotForward   string          `csv:"Spot/Forward"`
	BusinessUnit  string          `csv:"Business Unit"`
	Counterparty  string          `csv:"Counterparty"`
	DealType      string          `csv:"Deal Type"`
	DealDate      string          `csv:"Deal Date"`
	ValueDate     string          `csv:"Value Date"`
	BuySell       string          `csv:"Buy/Sell"`
	BuyCurrency   string          `csv:"Buy Currency"`
	SellCurrency  string          `csv:"Sell Currency"`
	Amount        decimal.Decimal `csv:"Amount"`
	SpotRate      decimal.Decimal `csv:"Spot Rate"`
	ForwardPoints decimal.Decimal `csv:"Fwd Points"`
	ForwardRate   decimal.Decimal `csv:"Fwd Rate"`
	Reference     string          `csv:"360T Reference"`
}

// SwapFISRow is the 18-column FIS upload layout for FX swaps.
type SwapFISRow struct {
	BusinessUnit     string          `csv:"Business Unit"`
	Counterparty     string          `csv:"Counterparty"`
	DealType         string          `csv:"Deal Type"`
	TradeDate        string          `csv:"Trade Date"`
	BuySell          string          `csv:"Buy/Sell"`
	BuyCurrency      string          `csv:"Buy Currency"`
	SellCurrency     string          `csv:"Sell Currency"`
	NearValueDate    string          `csv:"NL-Value Date"`
	NearAmount       decimal.Decimal `csv:"NL-Amount"`
	NearSpotRate     decimal.Decimal `csv:"NL-Spot Rate"`
	NearForwardPts   decimal.Decimal `csv:"NL-Forward Points"`
	NearForwardRate  decimal.Decimal `csv:"NL-Forward Rate"`
	FarValueDate     string          `csv:"FL-Value Date"`
	FarAmount        decimal.Decimal `csv:"FL-Amount"`
	FarSpotRate      decimal.Decimal `csv:"FL-Spot Rate"`
	FarForwardPts    decimal.Decimal `csv:"FL-Forward Points"`
	FarForwardRate   decimal.Decimal `csv:"FL-Forward Rate"`
	Reference        string          `csv:"360T Reference"`
}
