// Package adapters はassetsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"finance_backend/internal/feature/assets/domain/entity"
	"finance_backend/internal/feature/assets/usecase"
)

// assetGorm はAssetRepositoryインターフェースのGORM実装です。
type assetGorm struct {
	db *gorm.DB
}

// assetGormがAssetRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AssetRepository = (*assetGorm)(nil)

// NewAssetRepository は指定されたgorm.DB接続でリポジトリを生成します。
func NewAssetRepository(db *gorm.DB) *assetGorm {
	return &assetGorm{db: db}
}

// Create は資産をデータベースに追加します。
func (r *assetGorm) Create(ctx context.Context, a *entity.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindByUserID は指定ユーザーの全資産を取得します。
func (r *assetGorm) FindByUserID(ctx context.Context, userID uint) ([]entity.Asset, error) {
	var assets []entity.Asset
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// Update は指定ユーザーの資産の非nilフィールドのみを更新します。
// 他ユーザーの資産IDを指定された場合もErrAssetNotFoundになります。
func (r *assetGorm) Update(ctx context.Context, userID, assetID uint, category, typ *string, amount *float64) error {
	updates := map[string]any{"updated_at": time.Now()}
	if category != nil {
		updates["category"] = *category
	}
	if typ != nil {
		updates["type"] = *typ
	}
	if amount != nil {
		updates["amount"] = *amount
	}

	res := r.db.WithContext(ctx).Model(&entity.Asset{}).
		Where("id = ? AND user_id = ?", assetID, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAssetNotFound
	}
	return nil
}

// Delete は指定ユーザーの資産を削除します。
func (r *assetGorm) Delete(ctx context.Context, userID, assetID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", assetID, userID).
		Delete(&entity.Asset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAssetNotFound
	}
	return nil
}
