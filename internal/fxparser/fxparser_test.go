package fxparser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khorevkp/KK-Tools/internal/models"
	"github.com/khorevkp/KK-Tools/internal/parsererror"
)

func init() {
	log = logrus.New()
	log.SetLevel(logrus.DebugLevel)
}

func forwardXML(buyer, seller string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<tradeConfirmation xmlns="http://www.360t.com/trade">
  <tradeDate>2023-06-01T14:30:00</tradeDate>
  <referenceId>360T-REF-12345</referenceId>
  <product>
    <fxOutright>
      <buyer>%s</buyer>
      <seller>%s</seller>
      <currency1>EUR</currency1>
      <currency2>USD</currency2>
      <notionalCurrency>EUR</notionalCurrency>
      <notionalAmount>1000000</notionalAmount>
      <oppositeAmount>1085500</oppositeAmount>
      <effectiveDate>2023-09-01</effectiveDate>
      <referenceSpotRate>1.0810</referenceSpotRate>
      <forwardPoints>0.0045</forwardPoints>
      <outrightRate>1.0855</outrightRate>
    </fxOutright>
  </product>
</tradeConfirmation>`, buyer, seller)
}

const swapXML = `<?xml version="1.0" encoding="UTF-8"?>
<tradeConfirmation xmlns="http://www.360t.com/trade">
  <tradeDate>2023-06-02T09:15:00</tradeDate>
  <referenceId>360T-REF-67890</referenceId>
  <product>
    <fxSwap>
      <fxNearLeg>
        <buyer>TREASURY1</buyer>
        <seller>BANK-A</seller>
        <currency1>EUR</currency1>
        <currency2>CHF</currency2>
        <notionalCurrency>EUR</notionalCurrency>
        <notionalAmount>500000</notionalAmount>
        <oppositeAmount>487500</oppositeAmount>
        <effectiveDate>2023-06-06</effectiveDate>
        <referenceSpotRate>0.9750</referenceSpotRate>
        <forwardPoints>0.0000</forwardPoints>
        <outrightRate>0.9750</outrightRate>
      </fxNearLeg>
      <fxFarLeg>
        <buyer>BANK-A</buyer>
        <seller>TREASURY1</seller>
        <currency1>EUR</currency1>
        <currency2>CHF</currency2>
        <notionalCurrency>EUR</notionalCurrency>
        <notionalAmount>500000</notionalAmount>
        <oppositeAmount>486900</oppositeAmount>
        <effectiveDate>2023-09-06</effectiveDate>
        <referenceSpotRate>0.9750</referenceSpotRate>
        <forwardPoints>-0.0012</forwardPoints>
        <outrightRate>0.9738</outrightRate>
      </fxFarLeg>
    </fxSwap>
  </product>
</tradeConfirmation>`

func TestParseForwardEntityBuys(t *testing.T) {
	trade, err := Parse(forwardXML("TREASURY1", "BANK-A"), "TREASURY1")
	require.NoError(t, err)

	assert.True(t, trade.Recognized)
	assert.Equal(t, models.TradeOutright, trade.Kind)
	assert.Equal(t, "TREASURY1", trade.CompanyCode)
	assert.Equal(t, "2023-06-01", trade.TradeDate)
	assert.Equal(t, "360T-REF-1", trade.ReferenceID)

	leg := trade.Leg
	assert.Equal(t, "BANK-A", leg.Counterparty)
	assert.Equal(t, models.DirectionBuy, leg.Direction)
	assert.Equal(t, "EUR", leg.BuyCurrency)
	assert.Equal(t, "USD", leg.SellCurrency)
	assert.Equal(t, "2023-09-01", leg.ValueDate)
	assert.True(t, leg.Amount.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, leg.SpotRate.Equal(decimal.RequireFromString("1.0810")))
	assert.True(t, leg.ForwardPoints.Equal(decimal.RequireFromString("0.0045")))
	assert.True(t, leg.OutrightRate.Equal(decimal.RequireFromString("1.0855")))
}

func TestParseForwardEntitySells(t *testing.T) {
	trade, err := Parse(forwardXML("BANK-A", "TREASURY1"), "TREASURY1")
	require.NoError(t, err)

	leg := trade.Leg
	assert.Equal(t, "BANK-A", leg.Counterparty)
	// Entity sells USD against the EUR notional.
	assert.Equal(t, models.DirectionSell, leg.Direction)
	assert.Equal(t, "USD", leg.BuyCurrency)
	assert.Equal(t, "EUR", leg.SellCurrency)
}

func TestParseSwap(t *testing.T) {
	trade, err := Parse(swapXML, "TREASURY1")
	require.NoError(t, err)

	assert.True(t, trade.Recognized)
	assert.Equal(t, models.TradeSwap, trade.Kind)

	assert.Equal(t, "BANK-A", trade.NearLeg.Counterparty)
	assert.Equal(t, models.DirectionBuy, trade.NearLeg.Direction)
	assert.Equal(t, "2023-06-06", trade.NearLeg.ValueDate)

	assert.Equal(t, "BANK-A", trade.FarLeg.Counterparty)
	assert.Equal(t, models.DirectionSell, trade.FarLeg.Direction)
	assert.Equal(t, "2023-09-06", trade.FarLeg.ValueDate)
	assert.True(t, trade.FarLeg.OutrightRate.Equal(decimal.RequireFromString("0.9738")))
}

func TestParseUnrecognizedProduct(t *testing.T) {
	xml := `<tradeConfirmation>
      <tradeDate>2023-06-03T10:00:00</tradeDate>
      <referenceId>360T-REF-00001</referenceId>
      <product>
        <fxOption>
          <buyer>TREASURY1</buyer>
        </fxOption>
      </product>
    </tradeConfirmation>`

	trade, err := Parse(xml, "TREASURY1")
	require.NoError(t, err)
	assert.False(t, trade.Recognized)
	assert.Equal(t, models.TradeKind("fxOption"), trade.Kind)
	assert.Equal(t, "2023-06-03", trade.TradeDate)
}

func TestParseMissingRequiredFieldFails(t *testing.T) {
	xml := `<tradeConfirmation>
      <tradeDate>2023-06-01T14:30:00</tradeDate>
      <referenceId>360T-REF-12345</referenceId>
      <product>
        <fxOutright>
          <buyer>TREASURY1</buyer>
          <seller>BANK-A</seller>
          <currency1>EUR</currency1>
          <currency2>USD</currency2>
          <notionalCurrency>EUR</notionalCurrency>
          <effectiveDate>2023-09-01</effectiveDate>
          <referenceSpotRate>1.0810</referenceSpotRate>
          <forwardPoints>0.0045</forwardPoints>
          <outrightRate>1.0855</outrightRate>
        </fxOutright>
      </product>
    </tradeConfirmation>`

	_, err := Parse(xml, "TREASURY1")
	var malformed *parsererror.MalformedTradeError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "notionalAmount", malformed.Field)
}

func TestParseNonNumericFieldFails(t *testing.T) {
	xml := `<tradeConfirmation>
      <product>
        <fxOutright>
          <buyer>TREASURY1</buyer>
          <seller>BANK-A</seller>
          <notionalCurrency>EUR</notionalCurrency>
          <notionalAmount>lots</notionalAmount>
          <oppositeAmount>1</oppositeAmount>
          <referenceSpotRate>1.0</referenceSpotRate>
          <forwardPoints>0.0</forwardPoints>
          <outrightRate>1.0</outrightRate>
        </fxOutright>
      </product>
    </tradeConfirmation>`

	_, err := Parse(xml, "TREASURY1")
	var malformed *parsererror.MalformedTradeError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "notionalAmount", malformed.Field)
	assert.Equal(t, "lots", malformed.Value)
}

func TestToForwardFIS(t *testing.T) {
	trade, err := Parse(forwardXML("TREASURY1", "BANK-A"), "TREASURY1")
	require.NoError(t, err)

	buMap := map[string]string{"TREASURY1": "BU01"}
	cpMap := map[string]string{"BANK-A": "CP-BANKA"}

	row := ToForwardFIS(trade, buMap, cpMap)
	assert.Equal(t, "F", row.SpotForward)
	assert.Equal(t, "BU01", row.BusinessUnit)
	assert.Equal(t, "CP-BANKA", row.Counterparty)
	assert.Equal(t, "FXFWEXT", row.DealType)
	assert.Equal(t, "01/06/2023", row.DealDate)
	assert.Equal(t, "01/09/2023", row.ValueDate)
	assert.Equal(t, "Buy", row.BuySell)
	assert.Equal(t, "EUR", row.BuyCurrency)
	assert.Equal(t, "USD", row.SellCurrency)
	assert.Equal(t, "360T-REF-1", row.Reference)
}

func TestToForwardFISUnmappedCodesAreBlank(t *testing.T) {
	trade, err := Parse(forwardXML("TREASURY1", "BANK-A"), "TREASURY1")
	require.NoError(t, err)

	row := ToForwardFIS(trade, map[string]string{}, map[string]string{})
	assert.Empty(t, row.BusinessUnit)
	assert.Empty(t, row.Counterparty)
}

func TestToSwapFIS(t *testing.T) {
	trade, err := Parse(swapXML, "TREASURY1")
	require.NoError(t, err)

	buMap := map[string]string{"TREASURY1": "BU01"}
	cpMap := map[string]string{"BANK-A": "CP-BANKA"}

	row := ToSwapFIS(trade, buMap, cpMap)
	assert.Equal(t, "BU01", row.BusinessUnit)
	assert.Equal(t, "CP-BANKA", row.Counterparty)
	assert.Equal(t, "FXSWEXT", row.DealType)
	assert.Equal(t, "02/06/2023", row.TradeDate)
	assert.Equal(t, "Buy", row.BuySell)
	assert.Equal(t, "06/06/2023", row.NearValueDate)
	assert.Equal(t, "06/09/2023", row.FarValueDate)
	assert.True(t, row.NearAmount.Equal(decimal.NewFromInt(500000)))
	assert.True(t, row.FarForwardRate.Equal(decimal.RequireFromString("0.9738")))
}
