// Package fxparser decodes 360T FX trade-confirmation messages (outright
// forwards and swaps) into normalized trade records and shapes them into the
// FIS upload layouts.
package fxparser

import (
	"regexp"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"

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

// productTagRe captures the tag of the single child under the product
// element. xmlpath cannot report element names, so the kind is probed from
// the normalized text.
var productTagRe = regexp.MustCompile(`<product>\s*<([A-Za-z0-9]+)`)

// Parse decodes one trade confirmation. Counterparty and direction are
// resolved relative to companyCode, the reporting entity. Product kinds other
// than outright forward and swap yield a record with Recognized=false rather
// than an error, since not-yet-supported trade types are expected input.
func Parse(raw, companyCode string) (models.FxTrade, error) {
	return parse(raw, "document", companyCode)
}

// ParseFile reads and decodes one trade-confirmation file.
func ParseFile(xmlFilePath, companyCode string) (models.FxTrade, error) {
	if !fileutils.FileExists(xmlFilePath) {
		return models.FxTrade{}, &parsererror.NotFoundError{Path: xmlFilePath}
	}
	raw, err := fileutils.ReadFileText(xmlFilePath)
	if err != nil {
		return models.FxTrade{}, err
	}
	return parse(raw, xmlFilePath, companyCode)
}

func parse(raw, source, companyCode string) (models.FxTrade, error) {
	normalized := xmlutils.NormalizeDocument(raw)
	root, err := xmlutils.ParseDocument(normalized)
	if err != nil {
		return models.FxTrade{}, &parsererror.MalformedDocumentError{Source: source, Err: err}
	}

	trade := models.FxTrade{
		CompanyCode: companyCode,
		TradeDate:   truncate(xmlutils.FirstMatch(root, "//tradeDate"), 10),
		ReferenceID: truncate(xmlutils.FirstMatch(root, "//referenceId"), 10),
	}

	kind := ""
	if m := productTagRe.FindStringSubmatch(normalized); m != nil {
		kind = m[1]
	}
	trade.Kind = models.TradeKind(kind)

	switch trade.Kind {
	case models.TradeOutright:
		leg, err := parseLeg(firstNode(root, "//product/fxOutright"), companyCode)
		if err != nil {
			return models.FxTrade{}, err
		}
		trade.Leg = leg
		trade.Recognized = true
	case models.TradeSwap:
		near, err := parseLeg(firstNode(root, "//product/fxSwap/fxNearLeg"), companyCode)
		if err != nil {
			return models.FxTrade{}, err
		}
		far, err := parseLeg(firstNode(root, "//product/fxSwap/fxFarLeg"), companyCode)
		if err != nil {
			return models.FxTrade{}, err
		}
		trade.NearLeg = near
		trade.FarLeg = far
		trade.Recognized = true
	default:
		log.WithFields(logrus.Fields{
			"source":  source,
			"product": kind,
		}).Warn("Unrecognized trade product kind")
	}

	return trade, nil
}

// parseLeg applies the per-leg extraction rule shared by outright forwards
// and both swap legs. The counterparty is whichever party is not the
// reporting entity; the direction is Buy when the entity's currency equals
// the notional currency, Sell otherwise.
func parseLeg(leg *xmlpath.Node, companyCode string) (models.TradeLeg, error) {
	if leg == nil {
		return models.TradeLeg{}, &parsererror.MalformedTradeError{Field: "leg", Value: ""}
	}

	buyer := xmlutils.FirstMatch(leg, "buyer")
	seller := xmlutils.FirstMatch(leg, "seller")
	currencyBuyer := xmlutils.FirstMatch(leg, "currency1")
	currencySeller := xmlutils.FirstMatch(leg, "currency2")
	notionalCurrency := xmlutils.FirstMatch(leg, "notionalCurrency")

	spot, err := requiredDecimal(leg, "referenceSpotRate")
	if err != nil {
		return models.TradeLeg{}, err
	}
	points, err := requiredDecimal(leg, "forwardPoints")
	if err != nil {
		return models.TradeLeg{}, err
	}
	rate, err := requiredDecimal(leg, "outrightRate")
	if err != nil {
		return models.TradeLeg{}, err
	}
	amount, err := requiredDecimal(leg, "notionalAmount")
	if err != nil {
		return models.TradeLeg{}, err
	}
	opposite, err := requiredDecimal(leg, "oppositeAmount")
	if err != nil {
		return models.TradeLeg{}, err
	}

	out := models.TradeLeg{
		NotionalCurrency: notionalCurrency,
		ValueDate:        xmlutils.FirstMatch(leg, "effectiveDate"),
		Amount:           amount,
		OppositeAmount:   opposite,
		SpotRate:         spot,
		ForwardPoints:    points,
		OutrightRate:     rate,
	}

	if buyer == companyCode {
		out.Counterparty = seller
		out.BuyCurrency = currencyBuyer
		out.SellCurrency = currencySeller
		out.Direction = direction(currencyBuyer, notionalCurrency)
	} else {
		out.Counterparty = buyer
		out.BuyCurrency = currencySeller
		out.SellCurrency = currencyBuyer
		out.Direction = direction(currencySeller, notionalCurrency)
	}

	return out, nil
}

func direction(entityCurrency, notionalCurrency string) models.TradeDirection {
	if entityCurrency == notionalCurrency {
		return models.DirectionBuy
	}
	return models.DirectionSell
}

func requiredDecimal(node *xmlpath.Node, field string) (decimal.Decimal, error) {
	value := xmlutils.FirstMatch(node, field)
	if value == "" {
		return decimal.Zero, &parsererror.MalformedTradeError{Field: field, Value: value}
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &parsererror.MalformedTradeError{Field: field, Value: value, Err: err}
	}
	return d, nil
}

func firstNode(root *xmlpath.Node, expr string) *xmlpath.Node {
	nodes := xmlutils.Nodes(root, expr)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
