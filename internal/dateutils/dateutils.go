// Package dateutils provides common date operations used throughout the
// application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutFIS      = "02/01/2006"
	DateLayoutFull     = "2006-01-02T15:04:05"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutFIS,
	DateLayoutFull,
	"2006-01-02T15:04:05Z07:00",
	"02-01-2006",
	"2006/01/02",
}

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// NormalizeISO reparses a date string into canonical ISO form. Unparseable
// strings yield an empty string rather than an error: malformed dates must
// not abort a batch run.
func NormalizeISO(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	return ToISODate(t)
}

// ToFISDate reshapes a YYYY-MM-DD prefixed date string into DD/MM/YYYY, the
// layout the FIS upload expects. Strings too short to carry a date are
// returned unchanged.
func ToFISDate(dateStr string) string {
	if len(dateStr) < 10 {
		return dateStr
	}
	year := dateStr[0:4]
	month := dateStr[5:7]
	day := dateStr[8:10]
	return day + "/" + month + "/" + year
}
