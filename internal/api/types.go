// Package api defines the request and response types of the HTTP API.
package api

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued JWT access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConvertResponse is the result of GET /convert.
type ConvertResponse struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"converted_amount"`
}

// AssetRequest is the body of POST /assets.
type AssetRequest struct {
	Category string  `json:"category" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
}

// AssetUpdateRequest is the body of PUT /assets. Nil fields are left unchanged.
type AssetUpdateRequest struct {
	ID       uint     `json:"id" binding:"required"`
	Category *string  `json:"category"`
	Type     *string  `json:"type"`
	Amount   *float64 `json:"amount"`
}

// AssetResponse is one asset in GET /assets. The converted fields are present
// only when a target currency was requested.
type AssetResponse struct {
	ID                uint     `json:"id"`
	Category          string   `json:"category"`
	Type              string   `json:"type"`
	Amount            float64  `json:"amount"`
	ConvertedAmount   *float64 `json:"converted_amount,omitempty"`
	ConvertedCurrency string   `json:"converted_currency,omitempty"`
}

// TransactionRequest is the body of POST /transactions.
type TransactionRequest struct {
	Type         string  `json:"type" binding:"required"`
	CategoryType string  `json:"category_type" binding:"required"`
	CurrencyType string  `json:"currency_type" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Date         string  `json:"date" binding:"required"`
}

// TransactionResponse is one transaction in GET /transactions.
type TransactionResponse struct {
	ID           uint    `json:"transaction_id"`
	Type         string  `json:"type"`
	CategoryType string  `json:"category_type"`
	CurrencyType string  `json:"currency_type"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
}

// TargetRequest is the body of POST /targets.
type TargetRequest struct {
	TargetType string  `json:"target_type" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Currency   string  `json:"currency" binding:"required"`
}

// TargetResponse is one savings target in GET /targets. The converted fields
// are present only when a target currency was requested.
type TargetResponse struct {
	TargetType        string   `json:"target_type"`
	Amount            float64  `json:"amount"`
	Currency          string   `json:"currency"`
	ConvertedAmount   *float64 `json:"converted_amount,omitempty"`
	ConvertedCurrency string   `json:"converted_currency,omitempty"`
	UpdatedAt         string   `json:"updated_at"`
}
