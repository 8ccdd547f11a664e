// Package usecase は通貨換算のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"finance_backend/internal/feature/marketdata/domain/entity"
)

// SnapshotProvider は現在の市場データスナップショットへのアクセスを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context, currencies, stocks, cryptos []string) (*entity.Snapshot, error)
}

// Item は一括換算の対象となる金額付きアイテムです。
type Item struct {
	Currency          string  `json:"currency"`
	Amount            float64 `json:"amount"`
	ConvertedAmount   float64 `json:"converted_amount"`
	ConvertedCurrency string  `json:"converted_currency"`
}

// convertUsecase は通貨換算ユースケースを実装します。
type convertUsecase struct {
	snapshots SnapshotProvider
}

// NewConvertUsecase はconvertUsecaseの新しいインスタンスを生成します。
func NewConvertUsecase(snapshots SnapshotProvider) *convertUsecase {
	return &convertUsecase{snapshots: snapshots}
}

// Convert はamountをfromからtoへ換算します。
// from == to の場合はスナップショットを取得せずにamountをそのまま返します。
// 換算レートが見つからない場合はErrRateNotFoundを返します。
func (u *convertUsecase) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	// 恒等換算はフェッチ不要
	if from == to {
		return amount, nil
	}

	snap, err := u.snapshots.GetSnapshot(ctx, nil, nil, nil)
	if err != nil {
		return 0, err
	}

	rate, err := lookupRate(snap, from, to)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}

// ConvertItems は各アイテムの金額をtoへ換算し、converted_amount /
// converted_currency を付与して返します。既にtoで表されているアイテムは
// 金額をそのまま引き継ぎます。スナップショットの取得はリスト全体で高々1回です。
func (u *convertUsecase) ConvertItems(ctx context.Context, items []Item, to string) ([]Item, error) {
	to = strings.ToUpper(strings.TrimSpace(to))

	// 換算が必要なアイテムがある場合のみスナップショットを取得する
	var snap *entity.Snapshot
	out := make([]Item, len(items))
	for i, item := range items {
		item.Currency = strings.ToUpper(strings.TrimSpace(item.Currency))
		item.ConvertedCurrency = to

		if item.Currency == to {
			item.ConvertedAmount = item.Amount
			out[i] = item
			continue
		}

		if snap == nil {
			s, err := u.snapshots.GetSnapshot(ctx, nil, nil, nil)
			if err != nil {
				return nil, err
			}
			snap = s
		}

		rate, err := lookupRate(snap, item.Currency, to)
		if err != nil {
			return nil, err
		}
		item.ConvertedAmount = item.Amount * rate
		out[i] = item
	}
	return out, nil
}

// lookupRate はスナップショットの通貨マップから有向ペアのレートを引きます。
func lookupRate(snap *entity.Snapshot, from, to string) (float64, error) {
	ticker := entity.PairTicker(from, to)
	// 通貨バスケット全体のフェッチが失敗しているとCurrencyはnil
	rate, ok := snap.Currency[ticker]
	if !ok {
		return 0, fmt.Errorf("%s: %w", ticker, ErrRateNotFound)
	}
	return rate, nil
}
