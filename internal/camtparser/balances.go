package camtparser

import (
	"sort"

	"github.com/khorevkp/KK-Tools/internal/models"
)

// StatementRows reshapes parsed statements into the statements table.
func StatementRows(statements []models.Statement) []models.StatementRow {
	rows := make([]models.StatementRow, 0, len(statements))
	for _, stmt := range statements {
		rows = append(rows, models.StatementRow{
			StatementID:      stmt.ID,
			AccountID:        stmt.AccountID,
			OwnerName:        stmt.OwnerName,
			TransactionCount: stmt.TransactionCount,
			TotalAmount:      stmt.TransactionTotal,
		})
	}
	return rows
}

// BalanceRows reshapes parsed statements into the balances table, one row per
// balance code per statement, in code order.
func BalanceRows(statements []models.Statement) []models.BalanceRow {
	var rows []models.BalanceRow
	for _, stmt := range statements {
		for _, code := range sortedCodes(stmt.Balances) {
			b := stmt.Balances[code]
			rows = append(rows, models.BalanceRow{
				StatementID: stmt.ID,
				AccountID:   stmt.AccountID,
				Code:        b.Code,
				Description: b.Description,
				Indicator:   b.Indicator,
				Amount:      b.Amount,
				Currency:    b.Currency,
				Date:        b.Date,
			})
		}
	}
	return rows
}

// TransactionRows reshapes parsed entries into the transactions table.
func TransactionRows(entries []models.Entry) []models.TransactionRow {
	rows := make([]models.TransactionRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.TransactionRow{
			StatementID:        e.StatementID,
			AccountID:          e.AccountID,
			Amount:             e.Amount,
			Currency:           e.Currency,
			CreditDebit:        e.CreditDebit,
			DebtorName:         e.DebtorName,
			DebtorAccount:      e.DebtorAccount,
			CreditorName:       e.CreditorName,
			CreditorAccount:    e.CreditorAccount,
			Reference:          e.Reference,
			AdditionalInfo:     e.AdditionalInfo,
			Domain:             e.Domain,
			Family:             e.Family,
			SubFamily:          e.SubFamily,
			ProprietaryCode:    e.ProprietaryCode,
			ProprietaryIssuer:  e.ProprietaryIssuer,
			BookingDate:        e.BookingDate,
			ValueDate:          e.ValueDate,
			InstructionID:      e.InstructionID,
			PaymentInfoID:      e.PaymentInfoID,
			EndToEndID:         e.EndToEndID,
			AccountServicerRef: e.AccountServicerRef,
		})
	}
	return rows
}

// BalanceSummary builds the derived 8-column balances view. When a statement
// carries no opening booked balance but has a previously-closed booked one,
// the latter substitutes as the opening balance. Statements without any known
// balance still yield a row carrying the header fields, so the view degrades
// instead of failing.
func BalanceSummary(statements []models.Statement) []models.BalanceSummaryRow {
	rows := make([]models.BalanceSummaryRow, 0, len(statements))
	for _, stmt := range statements {
		row := models.BalanceSummaryRow{
			StatementID:      stmt.ID,
			AccountID:        stmt.AccountID,
			TransactionCount: stmt.TransactionCount,
			TotalAmount:      stmt.TransactionTotal,
		}

		opening, hasOpening := stmt.Balance("OPBD")
		if !hasOpening {
			opening, hasOpening = stmt.Balance("PRCD")
		}
		if hasOpening {
			row.OpeningBalance = opening.Amount
			row.Currency = opening.Currency
			row.Date = opening.Date
		}

		if closing, ok := stmt.Balance("CLBD"); ok {
			row.ClosingBalance = closing.Amount
			if row.Currency == "" {
				row.Currency = closing.Currency
			}
			if row.Date == "" {
				row.Date = closing.Date
			}
		}

		rows = append(rows, row)
	}
	return rows
}

func sortedCodes(balances map[string]models.Balance) []string {
	codes := make([]string, 0, len(balances))
	for code := range balances {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
