package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance_backend/internal/feature/marketdata/usecase"
)

func newTestMarket(t *testing.T, handler http.HandlerFunc) *YahooMarket {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewYahooMarket(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, srv.Client(), nil)
}

// chartPayload は指定シンボルのv8チャートレスポンスを組み立てます。
// 末尾のバーをnullにして「最新の非nullバー」の選択を検証できるようにします。
func chartPayload() string {
	return `{
		"chart": {
			"result": [{
				"meta": {"symbol": "AAPL", "currency": "USD"},
				"timestamp": [1700000000, 1700000060, 1700000120],
				"indicators": {"quote": [{
					"open":   [189.0, 189.5, null],
					"high":   [189.2, 189.9, null],
					"low":    [188.8, 189.1, null],
					"close":  [189.1, 189.7, null],
					"volume": [1000, 2000, null]
				}]}
			}],
			"error": null
		}
	}`
}

func TestQuote_LatestNonNullBar(t *testing.T) {
	t.Parallel()

	var gotUA string
	m := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/AAPL") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(chartPayload()))
	})

	bars, err := m.quote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("expected exactly 1 bar, got %d", len(bars))
	}

	// 末尾のnullバーを飛ばして2本目（最新の非null）が選ばれる
	if bars[0].Close != 189.7 {
		t.Errorf("expected latest non-null close 189.7, got %v", bars[0].Close)
	}
	if !bars[0].Date.Equal(time.Unix(1700000060, 0).UTC()) {
		t.Errorf("unexpected bar date: %v", bars[0].Date)
	}
	if gotUA != "Mozilla/5.0" {
		t.Errorf("expected browser User-Agent, got %q", gotUA)
	}
}

func TestQuote_AllNullBars(t *testing.T) {
	t.Parallel()

	m := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"chart": {
				"result": [{
					"timestamp": [1700000000],
					"indicators": {"quote": [{"close": [null]}]}
				}],
				"error": null
			}
		}`))
	})

	if _, err := m.quote(context.Background(), "AAPL"); err == nil {
		t.Fatal("expected an error when every bar is null")
	}
}

func TestQuoteBatch_KeyPerSymbol(t *testing.T) {
	t.Parallel()

	m := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		// BADシンボルのみ失敗させる
		if strings.Contains(r.URL.Path, "BAD") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(chartPayload()))
	})

	symbols := []string{"AAPL", "BAD", "NVDA"}
	got := m.QuoteBatch(context.Background(), symbols)

	if len(got) != len(symbols) {
		t.Fatalf("expected %d entries, got %d", len(symbols), len(got))
	}
	for _, s := range symbols {
		bars, ok := got[s]
		if !ok {
			t.Errorf("missing entry for %s", s)
			continue
		}
		if s == "BAD" && len(bars) != 0 {
			t.Errorf("failed symbol must degrade to an empty slice, got %v", bars)
		}
		if s != "BAD" && len(bars) != 1 {
			t.Errorf("expected 1 bar for %s, got %d", s, len(bars))
		}
	}
}

func TestCurrencyRates(t *testing.T) {
	t.Parallel()

	m := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v7/finance/quote" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbols"); got != "USDHKD=X,HKDUSD=X" {
			t.Errorf("unexpected symbols query: %q", got)
		}
		_, _ = w.Write([]byte(`{
			"quoteResponse": {
				"result": [
					{"symbol": "USDHKD=X", "regularMarketPrice": 7.81},
					{"symbol": "HKDUSD=X", "regularMarketPrice": 0.128}
				],
				"error": null
			}
		}`))
	})

	rates, err := m.CurrencyRates(context.Background(), []string{"USDHKD=X", "HKDUSD=X"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates["USDHKD=X"] != 7.81 || rates["HKDUSD=X"] != 0.128 {
		t.Errorf("unexpected rates: %v", rates)
	}
}

func TestCurrencyRates_EmptyResult(t *testing.T) {
	t.Parallel()

	m := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteResponse": {"result": [], "error": null}}`))
	})

	_, err := m.CurrencyRates(context.Background(), []string{"USDHKD=X"})
	if !errors.Is(err, usecase.ErrNoRateData) {
		t.Fatalf("expected ErrNoRateData, got %v", err)
	}
}

func TestCurrencyRates_NoTickers(t *testing.T) {
	t.Parallel()

	m := NewYahooMarket(Config{BaseURL: "http://unused", Timeout: time.Second}, http.DefaultClient, nil)
	if _, err := m.CurrencyRates(context.Background(), nil); !errors.Is(err, usecase.ErrNoRateData) {
		t.Fatalf("expected ErrNoRateData, got %v", err)
	}
}
