// Package usecase は保有資産の管理と評価額算出のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	assetentity "finance_backend/internal/feature/assets/domain/entity"
	marketentity "finance_backend/internal/feature/marketdata/domain/entity"
)

// AssetRepository は資産エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AssetRepository interface {
	Create(ctx context.Context, asset *assetentity.Asset) error
	FindByUserID(ctx context.Context, userID uint) ([]assetentity.Asset, error)
	// Update は指定ユーザーの資産の非nilフィールドのみを更新します。
	// 対象が存在しない場合、ErrAssetNotFoundを返します。
	Update(ctx context.Context, userID, assetID uint, category, typ *string, amount *float64) error
	// Delete は指定ユーザーの資産を削除します。
	// 対象が存在しない場合、ErrAssetNotFoundを返します。
	Delete(ctx context.Context, userID, assetID uint) error
}

// SnapshotProvider は現在の市場データスナップショットへのアクセスを抽象化します。
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context, currencies, stocks, cryptos []string) (*marketentity.Snapshot, error)
}

// Converter は通貨間の金額換算を抽象化します。
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

// ValuedAsset は対象通貨での評価額を付与した資産です。
type ValuedAsset struct {
	assetentity.Asset
	ConvertedAmount   float64
	ConvertedCurrency string
}

// assetUsecase は資産のCRUDと評価額算出のユースケースを実装します。
type assetUsecase struct {
	assets    AssetRepository
	snapshots SnapshotProvider
	converter Converter
}

// NewAssetUsecase はassetUsecaseの新しいインスタンスを生成します。
func NewAssetUsecase(assets AssetRepository, snapshots SnapshotProvider, converter Converter) *assetUsecase {
	return &assetUsecase{assets: assets, snapshots: snapshots, converter: converter}
}

// List はユーザーの資産一覧を返します。
func (u *assetUsecase) List(ctx context.Context, userID uint) ([]assetentity.Asset, error) {
	return u.assets.FindByUserID(ctx, userID)
}

// Add は新しい資産を登録します。
func (u *assetUsecase) Add(ctx context.Context, userID uint, category, typ string, amount float64) (*assetentity.Asset, error) {
	asset := &assetentity.Asset{
		UserID:   userID,
		Category: strings.ToLower(strings.TrimSpace(category)),
		Type:     strings.ToUpper(strings.TrimSpace(typ)),
		Amount:   amount,
	}
	if err := u.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// Update は資産の指定フィールドのみを部分更新します。
func (u *assetUsecase) Update(ctx context.Context, userID, assetID uint, category, typ *string, amount *float64) error {
	if category != nil {
		lc := strings.ToLower(strings.TrimSpace(*category))
		category = &lc
	}
	if typ != nil {
		ut := strings.ToUpper(strings.TrimSpace(*typ))
		typ = &ut
	}
	return u.assets.Update(ctx, userID, assetID, category, typ, amount)
}

// Remove は資産を削除します。
func (u *assetUsecase) Remove(ctx context.Context, userID, assetID uint) error {
	return u.assets.Delete(ctx, userID, assetID)
}

// Value は1件の資産を対象通貨で評価します。
//
// カテゴリごとの評価方法:
//   - currency: 保有額を保有通貨から対象通貨へ換算
//   - stock:    最新終値 × 数量 をUSD建てとみなし、USD→対象通貨へ換算
//   - crypto:   stockと同様。シンボルは "-USD" サフィックス付きで参照
//   - その他:   通貨として扱う（フォールバック）
func (u *assetUsecase) Value(ctx context.Context, asset assetentity.Asset, target string) (ValuedAsset, error) {
	target = strings.ToUpper(strings.TrimSpace(target))

	var (
		converted float64
		err       error
	)
	switch asset.Category {
	case assetentity.CategoryStock:
		converted, err = u.valueQuoted(ctx, asset, target, false)
	case assetentity.CategoryCrypto:
		converted, err = u.valueQuoted(ctx, asset, target, true)
	default:
		// currency および未知カテゴリは通貨換算で評価する
		converted, err = u.converter.Convert(ctx, asset.Amount, asset.Type, target)
	}
	if err != nil {
		return ValuedAsset{}, err
	}

	return ValuedAsset{
		Asset:             asset,
		ConvertedAmount:   converted,
		ConvertedCurrency: target,
	}, nil
}

// valueQuoted は株式・暗号資産の評価額を算出します。
// 相場価格はUSD建てとみなし、最新終値 × 数量 をUSDから対象通貨へ換算します。
func (u *assetUsecase) valueQuoted(ctx context.Context, asset assetentity.Asset, target string, crypto bool) (float64, error) {
	symbol := strings.ToUpper(asset.Type)

	var (
		snap *marketentity.Snapshot
		err  error
	)
	if crypto {
		symbol = marketentity.CryptoTicker(symbol)
		snap, err = u.snapshots.GetSnapshot(ctx, nil, nil, []string{asset.Type})
	} else {
		snap, err = u.snapshots.GetSnapshot(ctx, nil, []string{asset.Type}, nil)
	}
	if err != nil {
		return 0, err
	}

	bars := snap.Stock[symbol]
	if crypto {
		bars = snap.Crypto[symbol]
	}
	if len(bars) == 0 {
		return 0, fmt.Errorf("%s: %w", symbol, ErrPriceUnavailable)
	}

	usdValue := bars[0].Close * asset.Amount
	return u.converter.Convert(ctx, usdValue, "USD", target)
}

// ListValued はユーザーの全資産を対象通貨で評価して返します。
func (u *assetUsecase) ListValued(ctx context.Context, userID uint, target string) ([]ValuedAsset, error) {
	assets, err := u.assets.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ValuedAsset, 0, len(assets))
	for _, a := range assets {
		v, err := u.Value(ctx, a, target)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
