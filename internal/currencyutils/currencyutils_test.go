package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234.56", "1234.56"},
		{"1'234.56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{" 100 ", "100"},
		{"-50.25", "-50.25"},
	}

	for _, tc := range tests {
		amount, err := ParseAmount(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.True(t, amount.Equal(decimal.RequireFromString(tc.expected)), "input %q", tc.input)
	}
}

func TestParseAmountErrors(t *testing.T) {
	_, err := ParseAmount("")
	assert.Error(t, err)

	_, err = ParseAmount("   ")
	assert.Error(t, err)

	_, err = ParseAmount("abc")
	assert.Error(t, err)
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeAmount("1'234.56"))
	assert.Equal(t, "1234.56", StandardizeAmount("1234,56"))
	assert.Equal(t, "1234.56", StandardizeAmount("1,234.56"))
	assert.Equal(t, "100", StandardizeAmount(" 1 0 0 "))
}
