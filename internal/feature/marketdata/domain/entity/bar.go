// Package entity defines the domain entities for the marketdata feature.
package entity

import (
	"fmt"
	"strings"
	"time"
)

// Bar represents one time-sampled OHLCV quote for a symbol.
// JSON field names match the persisted snapshot format.
type Bar struct {
	// Date is the sampling time of the quote.
	Date time.Time `json:"Date"`

	// Open is the opening price of the sampling window.
	Open float64 `json:"Open"`

	// High is the highest price of the sampling window.
	High float64 `json:"High"`

	// Low is the lowest price of the sampling window.
	Low float64 `json:"Low"`

	// Close is the most recent price of the sampling window.
	Close float64 `json:"Close"`

	// Volume is the traded volume of the sampling window.
	Volume float64 `json:"Volume"`
}

// PairTicker builds the directed currency-pair ticker for two currency codes,
// e.g. PairTicker("USD", "HKD") == "USDHKD=X".
func PairTicker(from, to string) string {
	return fmt.Sprintf("%s%s=X", strings.ToUpper(from), strings.ToUpper(to))
}

// CryptoTicker appends the "-USD" quote suffix to a crypto code unless the
// caller already supplied a suffixed symbol.
func CryptoTicker(code string) string {
	code = strings.ToUpper(code)
	if strings.Contains(code, "-") {
		return code
	}
	return code + "-USD"
}
