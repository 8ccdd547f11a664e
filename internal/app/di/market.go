// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"finance_backend/internal/feature/marketdata/adapters/yahoo"
	infrahttp "finance_backend/internal/platform/http"
	"finance_backend/internal/shared/ratelimiter"
)

// NewMarket creates a fully configured YahooMarket with HTTP client and
// rate limiter. Yahoo tolerates roughly 60 unauthenticated requests per
// minute, so the limiter stays just below that.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(50, time.Minute)
	return yahoo.NewYahooMarket(cfg, httpClient, limiter)
}
