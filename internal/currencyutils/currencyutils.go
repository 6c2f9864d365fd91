// Package currencyutils provides common amount parsing operations used
// throughout the application.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string representation of an amount into a decimal
// value. It tolerates a comma decimal separator and apostrophe thousand
// separators as found in some producer output.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount converts amount strings to a form decimal.NewFromString
// accepts. Handles patterns like "1'234.56" and "1234,56".
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = strings.ReplaceAll(amountStr, " ", "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")
	if strings.Contains(amountStr, ",") && !strings.Contains(amountStr, ".") {
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	} else {
		amountStr = strings.ReplaceAll(amountStr, ",", "")
	}
	return amountStr
}
