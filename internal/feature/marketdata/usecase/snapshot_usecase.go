// Package usecase は金融データスナップショットの取得・キャッシュのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"finance_backend/internal/feature/marketdata/domain/entity"
)

// MarketRepository は外部の市場データソースを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// QuoteBatch は各シンボルの最新バーを並行に取得します。
	// 戻り値のマップは入力シンボルごとに必ず1エントリを持ち、
	// 取得に失敗したシンボルは空スライスになります（キー欠落はしない）。
	QuoteBatch(ctx context.Context, symbols []string) map[string][]entity.Bar

	// CurrencyRates は通貨ペアティッカー群の終値を1回のバッチリクエストで取得します。
	// レスポンスが空または失敗した場合は部分データを返さずエラーを返します。
	CurrencyRates(ctx context.Context, tickers []string) (map[string]float64, error)
}

// SnapshotStore はスナップショットの単一スロット永続化を抽象化します。
// 空スロットは (nil, nil) で表現します。
type SnapshotStore interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, snap *entity.Snapshot) error
}

// Baskets はスナップショット取得時のデフォルトのシンボルバスケットです。
type Baskets struct {
	Currencies []string
	Stocks     []string
	Cryptos    []string
}

// DefaultBaskets はバスケット未指定時に使用する固定セットを返します。
func DefaultBaskets() Baskets {
	return Baskets{
		Currencies: []string{"CNY", "HKD", "JPY", "USD"},
		Stocks:     []string{"AAPL", "AMZN", "GOOG", "NVDA"},
		Cryptos:    []string{"BTC-USD", "DOGE-USD", "ETH-USD", "USDT-USD"},
	}
}

// SnapshotUsecase は通貨レート・株価・暗号資産の取得をキャッシュの背後で
// オーケストレーションするユースケースです。
type SnapshotUsecase struct {
	market   MarketRepository
	store    SnapshotStore
	defaults Baskets

	// sf は同時キャッシュミスを1回のフェッチに集約します。
	sf  singleflight.Group
	now func() time.Time
}

// NewSnapshotUsecase はSnapshotUsecaseの新しいインスタンスを生成します。
func NewSnapshotUsecase(market MarketRepository, store SnapshotStore, defaults Baskets) *SnapshotUsecase {
	return &SnapshotUsecase{
		market:   market,
		store:    store,
		defaults: defaults,
		now:      time.Now,
	}
}

// CurrencyPairTickers は通貨バスケットから全有向ペアのティッカー集合を構築します。
// n個の通貨に対して n*(n-1) 個のティッカーを返します。AB=X と BA=X は独立に
// 取得され、数値的な逆数関係は保証されません（実市場のスプレッドに従う）。
func CurrencyPairTickers(currencies []string) []string {
	tickers := make([]string, 0, len(currencies)*(len(currencies)-1))
	for _, from := range currencies {
		for _, to := range currencies {
			if !strings.EqualFold(from, to) {
				tickers = append(tickers, entity.PairTicker(from, to))
			}
		}
	}
	return tickers
}

// GetSnapshot は現在のスナップショットを返します。
//
// キャッシュされたスナップショットが当日（UTC暦日）のものであればフェッチせずに
// そのまま返します。このときバスケットの一致検証は行いません（既知のトレードオフ）。
// ミス時はフェッチを行い、結果を永続化してから返します。
func (u *SnapshotUsecase) GetSnapshot(ctx context.Context, currencies, stocks, cryptos []string) (*entity.Snapshot, error) {
	currencies, stocks, cryptos = u.normalize(currencies, stocks, cryptos)

	// キャッシュ確認。読み込み失敗はハードミスとして扱う
	cached, err := u.store.Load(ctx)
	if err != nil {
		slog.Warn("failed to load snapshot cache, treating as miss", "error", err)
	} else if cached.FreshAt(u.now()) {
		return cached, nil
	}

	// 同時ミスを単一のリフレッシュに集約する
	v, err, _ := u.sf.Do("snapshot", func() (any, error) {
		return u.refresh(ctx, currencies, stocks, cryptos), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entity.Snapshot), nil
}

// normalize はデフォルトバスケットの適用とシンボルの正規化を行います。
// 通貨・株式コードはそのまま大文字化し、暗号資産コードのみ "-USD" を補完します。
func (u *SnapshotUsecase) normalize(currencies, stocks, cryptos []string) ([]string, []string, []string) {
	if len(currencies) == 0 {
		currencies = u.defaults.Currencies
	}
	if len(stocks) == 0 {
		stocks = u.defaults.Stocks
	}
	if len(cryptos) == 0 {
		cryptos = u.defaults.Cryptos
	}

	upper := func(in []string) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = strings.ToUpper(strings.TrimSpace(s))
		}
		return out
	}

	currencies = upper(currencies)
	stocks = upper(stocks)

	suffixed := make([]string, len(cryptos))
	for i, c := range cryptos {
		suffixed[i] = entity.CryptoTicker(strings.TrimSpace(c))
	}

	return currencies, stocks, suffixed
}

// refresh は通貨レート・株式・暗号資産の3つのフェッチを並行に実行し、
// 新しいスナップショットを構築して永続化します。
func (u *SnapshotUsecase) refresh(ctx context.Context, currencies, stocks, cryptos []string) *entity.Snapshot {
	var (
		rates     map[string]float64
		stockBars map[string][]entity.Bar
		cryptoBar map[string][]entity.Bar
	)

	// 3つのフェッチはデータ依存がないため並行に実行する
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := u.market.CurrencyRates(gctx, CurrencyPairTickers(currencies))
		if err != nil {
			// 通貨バスケット全体の失敗はスナップショットを失敗させず、
			// 通貨マップをnilに劣化させる
			slog.Warn("currency rate fetch failed", "currencies", currencies, "error", err)
			return nil
		}
		rates = r
		return nil
	})
	g.Go(func() error {
		stockBars = u.market.QuoteBatch(gctx, stocks)
		return nil
	})
	g.Go(func() error {
		cryptoBar = u.market.QuoteBatch(gctx, cryptos)
		return nil
	})
	_ = g.Wait() // 各goroutineはエラーを吸収するため常にnil

	snap := &entity.Snapshot{
		RetrievedAt: u.now().UTC(),
		Currency:    rates,
		Stock:       stockBars,
		Crypto:      cryptoBar,
	}

	// 保存はベストエフォート。失敗しても取得済みデータは返す
	if err := u.store.Save(ctx, snap); err != nil {
		slog.Warn("failed to save snapshot cache", "error", err)
	}
	return snap
}
