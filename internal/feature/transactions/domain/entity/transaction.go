// Package entity defines the domain entities for the transactions feature.
package entity

import "time"

// Transaction represents one recorded income or expense of a user.
type Transaction struct {
	// ID is the unique identifier for the transaction.
	ID uint `gorm:"primaryKey"`

	// UserID is the owning user.
	UserID uint `gorm:"index;not null"`

	// Type is the transaction direction, e.g. "income" or "expense".
	Type string `gorm:"size:32;not null"`

	// CategoryType is the user-facing spending category, e.g. "food".
	CategoryType string `gorm:"size:64;not null"`

	// CurrencyType is the currency the amount is denominated in.
	CurrencyType string `gorm:"size:8;not null"`

	// Amount is the transaction amount in CurrencyType.
	Amount float64 `gorm:"not null"`

	// Date is when the transaction happened (user supplied).
	Date time.Time `gorm:"index;not null"`

	CreatedAt time.Time
}
