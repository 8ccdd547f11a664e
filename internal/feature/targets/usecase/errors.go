// Package usecase implements the business logic for the targets feature.
package usecase

import "errors"

var (
	// ErrTargetNotFound is returned when a user has no targets to return or delete.
	ErrTargetNotFound = errors.New("no targets found")
)
