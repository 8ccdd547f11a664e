// Package usecase implements the business logic for the conversion feature.
package usecase

import "errors"

var (
	// ErrRateNotFound is returned when the requested conversion pair is absent
	// from a successfully fetched rate table, or the whole rate table is
	// unavailable in the current snapshot.
	ErrRateNotFound = errors.New("conversion rate not found")
)
