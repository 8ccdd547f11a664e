// Package adapters はtargetsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finance_backend/internal/feature/targets/domain/entity"
	"finance_backend/internal/feature/targets/usecase"
)

// targetGorm はTargetRepositoryインターフェースのGORM実装です。
type targetGorm struct {
	db *gorm.DB
}

// targetGormがTargetRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TargetRepository = (*targetGorm)(nil)

// NewTargetRepository は指定されたgorm.DB接続でリポジトリを生成します。
func NewTargetRepository(db *gorm.DB) *targetGorm {
	return &targetGorm{db: db}
}

// Upsert は (user_id, target_type) をキーに目標を挿入または置換します。
func (r *targetGorm) Upsert(ctx context.Context, t *entity.Target) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "currency", "updated_at"}),
	}).Create(t).Error
}

// FindByUserID は指定ユーザーの全目標を取得します。
func (r *targetGorm) FindByUserID(ctx context.Context, userID uint) ([]entity.Target, error) {
	var targets []entity.Target
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("target_type").Find(&targets).Error; err != nil {
		return nil, err
	}
	return targets, nil
}

// DeleteByUserID は指定ユーザーの全目標を削除し、削除件数を返します。
func (r *targetGorm) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Target{})
	return res.RowsAffected, res.Error
}
