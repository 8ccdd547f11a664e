package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"finance_backend/internal/feature/marketdata/adapters/yahoo/dto"
	"finance_backend/internal/feature/marketdata/domain/entity"
	"finance_backend/internal/feature/marketdata/usecase"
	"finance_backend/internal/shared/ratelimiter"
)

// YahooMarket はYahoo Financeの公開APIから相場データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client, limiter: limiter}
}

// get は共通のGETリクエスト処理です。User-Agentを付与し、レートリミットに従います。
func (y *YahooMarket) get(ctx context.Context, u string, out any) error {
	if y.limiter != nil {
		y.limiter.WaitIfNeeded()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	// Yahooはデフォルトのgo-http-clientのUAを拒否する
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := y.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// quote は1シンボルの最新バーを取得します。
// 取得した時系列のうち、価格がnullでない最新の1本のみを保持します。
func (y *YahooMarket) quote(ctx context.Context, symbol string) ([]entity.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1m&range=1d",
		y.cfg.BaseURL, url.PathEscape(symbol))

	var body dto.ChartResponse
	if err := y.get(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no data for %s", symbol)
	}

	result := body.Chart.Result[0]
	q := result.Indicators.Quote[0]

	// 末尾（最新）からnullでないバーを探す
	for i := len(result.Timestamp) - 1; i >= 0; i-- {
		if i >= len(q.Close) || q.Close[i] == nil {
			continue
		}
		bar := entity.Bar{
			Date:  time.Unix(result.Timestamp[i], 0).UTC(),
			Close: *q.Close[i],
		}
		if i < len(q.Open) && q.Open[i] != nil {
			bar.Open = *q.Open[i]
		}
		if i < len(q.High) && q.High[i] != nil {
			bar.High = *q.High[i]
		}
		if i < len(q.Low) && q.Low[i] != nil {
			bar.Low = *q.Low[i]
		}
		if i < len(q.Volume) && q.Volume[i] != nil {
			bar.Volume = *q.Volume[i]
		}
		return []entity.Bar{bar}, nil
	}
	return nil, fmt.Errorf("yahoo: only null bars for %s", symbol)
}

// QuoteBatch は各シンボルの最新バーを並行に取得します。
// 個々のシンボルの失敗はログに記録して空スライスに劣化させ、バッチ全体は失敗させません。
// 戻り値は入力シンボルごとに必ず1エントリを持ちます。
func (y *YahooMarket) QuoteBatch(ctx context.Context, symbols []string) map[string][]entity.Bar {
	results := make(map[string][]entity.Bar, len(symbols))
	for _, s := range symbols {
		results[s] = []entity.Bar{}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			bars, err := y.quote(gctx, symbol)
			if err != nil {
				slog.Warn("quote fetch failed", "symbol", symbol, "error", err)
				return nil
			}
			mu.Lock()
			results[symbol] = bars
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // 各goroutineはエラーを吸収するため常にnil
	return results
}

// CurrencyRates は通貨ペアティッカー群の終値を1回のバッチリクエストで取得します。
// レスポンスが空の場合はErrNoRateDataを返し、部分データは返しません。
func (y *YahooMarket) CurrencyRates(ctx context.Context, tickers []string) (map[string]float64, error) {
	if len(tickers) == 0 {
		return nil, usecase.ErrNoRateData
	}

	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s",
		y.cfg.BaseURL, url.QueryEscape(strings.Join(tickers, ",")))

	var body dto.QuoteResponse
	if err := y.get(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yahoo: %s", body.QuoteResponse.Error.Description)
	}
	if len(body.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("tickers %v: %w", tickers, usecase.ErrNoRateData)
	}

	rates := make(map[string]float64, len(body.QuoteResponse.Result))
	for _, r := range body.QuoteResponse.Result {
		rates[r.Symbol] = r.RegularMarketPrice
	}
	return rates, nil
}
