// Package usecase implements the business logic for the assets feature.
package usecase

import "errors"

var (
	// ErrAssetNotFound is returned when an asset does not exist or does not
	// belong to the requesting user.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrPriceUnavailable is returned when no quote could be fetched for a
	// stock or crypto position being valued.
	ErrPriceUnavailable = errors.New("price unavailable")
)
