package fxparser

import (
	"github.com/khorevkp/KK-Tools/internal/dateutils"
	"github.com/khorevkp/KK-Tools/internal/models"
)

// FIS deal-type codes for externally executed trades.
const (
	fisDealTypeForward = "FXFWEXT"
	fisDealTypeSwap    = "FXSWEXT"
	fisProductForward  = "F"
)

// ToForwardFIS maps an outright forward onto the 14-column FIS upload
// layout. Business-unit and counterparty codes are translated through the
// caller-supplied lookup tables; an unmapped code yields a blank value so
// the row stays visible for downstream review instead of failing.
func ToForwardFIS(trade models.FxTrade, buMap, cpMap map[string]string) models.ForwardFISRow {
	return models.ForwardFISRow{
		SpotForward:   fisProductForward,
		BusinessUnit:  buMap[trade.CompanyCode],
		Counterparty:  cpMap[trade.Leg.Counterparty],
		DealType:      fisDealTypeForward,
		DealDate:      dateutils.ToFISDate(trade.TradeDate),
		ValueDate:     dateutils.ToFISDate(trade.Leg.ValueDate),
		BuySell:       string(trade.Leg.Direction),
		BuyCurrency:   trade.Leg.BuyCurrency,
		SellCurrency:  trade.Leg.SellCurrency,
		Amount:        trade.Leg.Amount,
		SpotRate:      trade.Leg.SpotRate,
		ForwardPoints: trade.Leg.ForwardPoints,
		ForwardRate:   trade.Leg.OutrightRate,
		Reference:     trade.ReferenceID,
	}
}

// ToSwapFIS maps an FX swap onto the 18-column FIS upload layout. The
// direction and counterparty of the near leg drive the deal-level columns.
func ToSwapFIS(trade models.FxTrade, buMap, cpMap map[string]string) models.SwapFISRow {
	return models.SwapFISRow{
		BusinessUnit:    buMap[trade.CompanyCode],
		Counterparty:    cpMap[trade.NearLeg.Counterparty],
		DealType:        fisDealTypeSwap,
		TradeDate:       dateutils.ToFISDate(trade.TradeDate),
		BuySell:         string(trade.NearLeg.Direction),
		BuyCurrency:     trade.NearLeg.BuyCurrency,
		SellCurrency:    trade.NearLeg.SellCurrency,
		NearValueDate:   dateutils.ToFISDate(trade.NearLeg.ValueDate),
		NearAmount:      trade.NearLeg.Amount,
		NearSpotRate:    trade.NearLeg.SpotRate,
		NearForwardPts:  trade.NearLeg.ForwardPoints,
		NearForwardRate: trade.NearLeg.OutrightRate,
		FarValueDate:    dateutils.ToFISDate(trade.FarLeg.ValueDate),
		FarAmount:       trade.FarLeg.Amount,
		FarSpotRate:     trade.FarLeg.SpotRate,
		FarForwardPts:   trade.FarLeg.ForwardPoints,
		FarForwardRate:  trade.FarLeg.OutrightRate,
		Reference:       trade.ReferenceID,
	}
}
