// Package rates retrieves FX reference rates from the ECB reference-rate
// service and parses the XML response into flat rate records.
package rates

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"

	"github.com/khorevkp/KK-Tools/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Default endpoints of the ECB reference-rate service.
const (
	DefaultDailyURL   = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"
	DefaultHistoryURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist-90d.xml"
)

// Client fetches reference rates. Calls are one-shot and synchronous;
// transient failures surface to the caller, nothing is retried internally.
type Client struct {
	DailyURL   string
	HistoryURL string
	HTTPClient *http.Client
}

// NewClient creates a rate client against the default ECB endpoints.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		DailyURL:   DefaultDailyURL,
		HistoryURL: DefaultHistoryURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// envelope mirrors the cube structure of the reference-rate XML.
type envelope struct {
	Days []struct {
		Time  string `xml:"time,attr"`
		Rates []struct {
			Currency string `xml:"currency,attr"`
			Rate     string `xml:"rate,attr"`
		} `xml:"Cube"`
	} `xml:"Cube>Cube"`
}

// DailyRates fetches the latest published rates, one record per currency.
func (c *Client) DailyRates() ([]models.Rate, error) {
	return c.fetch(c.DailyURL)
}

// HistoricalRates fetches the 90-day rate history, one record per currency
// per publication day.
func (c *Client) HistoricalRates() ([]models.Rate, error) {
	return c.fetch(c.HistoryURL)
}

func (c *Client) fetch(url string) ([]models.Rate, error) {
	log.WithField("url", url).Info("Fetching FX reference rates")

	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reference rates: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reference-rate service returned status %d", resp.StatusCode)
	}

	rates, err := ParseRates(resp.Body)
	if err != nil {
		return nil, err
	}

	log.WithField("count", len(rates)).Info("Fetched FX reference rates")
	return rates, nil
}

// ParseRates decodes a reference-rate XML document into flat rate records.
func ParseRates(r io.Reader) ([]models.Rate, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var env envelope
	if err := decoder.Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to parse reference-rate XML: %w", err)
	}

	var rates []models.Rate
	for _, day := range env.Days {
		for _, rate := range day.Rates {
			value, err := decimal.NewFromString(rate.Rate)
			if err != nil {
				log.WithField("rate", rate.Rate).WithField("currency", rate.Currency).Warn("Skipping unparseable rate")
				continue
			}
			rates = append(rates, models.Rate{
				Currency: rate.Currency,
				Date:     day.Time,
				Rate:     value,
			})
		}
	}
	return rates, nil
}
