// Package entity defines the domain entities for the targets feature.
package entity

import "time"

// Target represents a savings or investment goal of a user.
// A user has at most one target per TargetType; setting the same type again
// replaces the previous goal.
type Target struct {
	// ID is the unique identifier for the target.
	ID uint `gorm:"primaryKey"`

	// UserID is the owning user.
	UserID uint `gorm:"uniqueIndex:idx_user_target_type;not null"`

	// TargetType names the goal, e.g. "saving" or "investment".
	TargetType string `gorm:"uniqueIndex:idx_user_target_type;size:64;not null"`

	// Amount is the goal amount in Currency.
	Amount float64 `gorm:"not null"`

	// Currency is the currency code the goal is denominated in.
	Currency string `gorm:"size:8;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
