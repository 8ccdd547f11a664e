// Package adapters はtransactionsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"finance_backend/internal/feature/transactions/domain/entity"
	"finance_backend/internal/feature/transactions/usecase"
)

// transactionGorm はTransactionRepositoryインターフェースのGORM実装です。
type transactionGorm struct {
	db *gorm.DB
}

// transactionGormがTransactionRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TransactionRepository = (*transactionGorm)(nil)

// NewTransactionRepository は指定されたgorm.DB接続でリポジトリを生成します。
func NewTransactionRepository(db *gorm.DB) *transactionGorm {
	return &transactionGorm{db: db}
}

// Create は取引をデータベースに追加します。
func (r *transactionGorm) Create(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// FindByUserID は指定ユーザーの取引を日付の新しい順で取得します。
func (r *transactionGorm) FindByUserID(ctx context.Context, userID uint) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
