package dto

// QuoteResponse represents the JSON response from the v7 multi-symbol quote
// endpoint. The response is keyed by symbol; symbols Yahoo cannot resolve are
// simply absent from Result.
type QuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol             string  `json:"symbol"`
			RegularMarketPrice float64 `json:"regularMarketPrice"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}
