// Package usecase は取引記録のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finance_backend/internal/feature/transactions/domain/entity"
)

// TransactionRepository は取引エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	// FindByUserID は指定ユーザーの取引を日付の新しい順で取得します。
	FindByUserID(ctx context.Context, userID uint) ([]entity.Transaction, error)
}

// transactionUsecase は取引記録のユースケースを実装します。
type transactionUsecase struct {
	transactions TransactionRepository
}

// NewTransactionUsecase はtransactionUsecaseの新しいインスタンスを生成します。
func NewTransactionUsecase(transactions TransactionRepository) *transactionUsecase {
	return &transactionUsecase{transactions: transactions}
}

// Add は新しい取引を記録します。日付は "2006-01-02" またはRFC3339を受け付けます。
func (u *transactionUsecase) Add(ctx context.Context, userID uint, typ, categoryType, currencyType string, amount float64, date string) (*entity.Transaction, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	tx := &entity.Transaction{
		UserID:       userID,
		Type:         strings.ToLower(strings.TrimSpace(typ)),
		CategoryType: strings.ToLower(strings.TrimSpace(categoryType)),
		CurrencyType: strings.ToUpper(strings.TrimSpace(currencyType)),
		Amount:       amount,
		Date:         parsed,
	}
	if err := u.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// List は指定ユーザーの取引を日付の新しい順で返します。
func (u *transactionUsecase) List(ctx context.Context, userID uint) ([]entity.Transaction, error) {
	return u.transactions.FindByUserID(ctx, userID)
}

// parseDate は日付文字列をパースします。日付のみの形式を優先し、
// 失敗した場合はRFC3339を試します。
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
