// Package entity defines the domain entities for the assets feature.
package entity

import "time"

// Asset categories. Any other value falls back to the currency valuation path.
const (
	CategoryCurrency = "currency"
	CategoryStock    = "stock"
	CategoryCrypto   = "crypto"
)

// Asset represents one position held by a user: an amount of a currency,
// a stock, or a crypto asset.
type Asset struct {
	// ID is the unique identifier for the asset.
	ID uint `gorm:"primaryKey"`

	// UserID is the owning user. Assets are always scoped to their owner.
	UserID uint `gorm:"index;not null"`

	// Category is one of currency, stock or crypto.
	Category string `gorm:"size:32;not null"`

	// Type is the symbol of the position: a currency code ("USD"),
	// a stock ticker ("AAPL") or a crypto code ("BTC").
	Type string `gorm:"size:32;not null"`

	// Amount is the held quantity, denominated by Category/Type.
	Amount float64 `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
