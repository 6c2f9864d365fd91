package models

import "github.com/shopspring/decimal"

// TradeKind identifies the product of an FX trade confirmation.
type TradeKind string

const (
	TradeOutright TradeKind = "fxOutright"
	TradeSwap     TradeKind = "fxSwap"
)

// TradeDirection is the direction of a leg relative to the reporting entity's
// notional currency.
type TradeDirection string

const (
	DirectionBuy  TradeDirection = "Buy"
	DirectionSell TradeDirection = "Sell"
)

// TradeLeg carries the per-leg fields of an FX trade. For outright forwards
// the trade has a single leg; swaps have a near and a far leg.
type TradeLeg struct {
	Counterparty     string
	Direction        TradeDirection
	BuyCurrency      string
	SellCurrency     string
	NotionalCurrency string
	ValueDate        string
	Amount           decimal.Decimal
	OppositeAmount   decimal.Decimal
	SpotRate         decimal.Decimal
	ForwardPoints    decimal.Decimal
	OutrightRate     decimal.Decimal
}

// FxTrade is the normalized record of one trade confirmation. Kind keeps the
// raw product tag for unrecognized products so they stay visible downstream
// instead of failing the parse.
type FxTrade struct {
	Kind        TradeKind
	Recognized  bool
	CompanyCode string
	TradeDate   string
	ReferenceID string
	Leg         TradeLeg // outright forward leg
	NearLeg     TradeLeg // swap near leg
	FarLeg      TradeLeg // swap far leg
}

// Rate is one reference exchange rate as published by the rate service.
type Rate struct {
	Currency string          `csv:"Currency"`
	Date     string          `csv:"Date"`
	Rate     decimal.Decimal `csv:"Rate"`
}
