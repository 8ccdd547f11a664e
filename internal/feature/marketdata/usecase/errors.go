// Package usecase implements the business logic for the marketdata feature.
package usecase

import "errors"

var (
	// ErrNoRateData is returned when the market-data source returns no rows
	// for a whole currency basket. Partial or stale data is never substituted.
	ErrNoRateData = errors.New("no currency rate data returned")
)
