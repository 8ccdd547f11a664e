// Package usecase は貯蓄・投資目標のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	convusecase "finance_backend/internal/feature/conversion/usecase"
	"finance_backend/internal/feature/targets/domain/entity"
)

// TargetRepository は目標エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TargetRepository interface {
	// Upsert は (user_id, target_type) をキーに目標を挿入または置換します。
	Upsert(ctx context.Context, target *entity.Target) error
	FindByUserID(ctx context.Context, userID uint) ([]entity.Target, error)
	// DeleteByUserID は指定ユーザーの全目標を削除し、削除件数を返します。
	DeleteByUserID(ctx context.Context, userID uint) (int64, error)
}

// ItemsConverter は金額付きアイテムのリストを一括で通貨換算します。
type ItemsConverter interface {
	ConvertItems(ctx context.Context, items []convusecase.Item, to string) ([]convusecase.Item, error)
}

// ConvertedTarget は対象通貨での換算額を付与した目標です。
type ConvertedTarget struct {
	entity.Target
	ConvertedAmount   float64
	ConvertedCurrency string
}

// targetUsecase は目標管理のユースケースを実装します。
type targetUsecase struct {
	targets   TargetRepository
	converter ItemsConverter
}

// NewTargetUsecase はtargetUsecaseの新しいインスタンスを生成します。
func NewTargetUsecase(targets TargetRepository, converter ItemsConverter) *targetUsecase {
	return &targetUsecase{targets: targets, converter: converter}
}

// Set は目標を設定します。同じtarget_typeの既存目標は置き換えられます。
func (u *targetUsecase) Set(ctx context.Context, userID uint, targetType string, amount float64, currency string) error {
	target := &entity.Target{
		UserID:     userID,
		TargetType: strings.ToLower(strings.TrimSpace(targetType)),
		Amount:     amount,
		Currency:   strings.ToUpper(strings.TrimSpace(currency)),
	}
	return u.targets.Upsert(ctx, target)
}

// List はユーザーの目標一覧を返します。目標が1件もない場合はErrTargetNotFoundを返します。
func (u *targetUsecase) List(ctx context.Context, userID uint) ([]entity.Target, error) {
	targets, err := u.targets.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, ErrTargetNotFound
	}
	return targets, nil
}

// ListConverted はユーザーの目標一覧を対象通貨での換算額付きで返します。
// 変換はリスト全体に対する一括換算で行われ、既に対象通貨の目標は
// 金額がそのまま引き継がれます。
func (u *targetUsecase) ListConverted(ctx context.Context, userID uint, to string) ([]ConvertedTarget, error) {
	targets, err := u.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]convusecase.Item, len(targets))
	for i, t := range targets {
		items[i] = convusecase.Item{Currency: t.Currency, Amount: t.Amount}
	}

	converted, err := u.converter.ConvertItems(ctx, items, to)
	if err != nil {
		return nil, err
	}

	out := make([]ConvertedTarget, len(targets))
	for i, t := range targets {
		out[i] = ConvertedTarget{
			Target:            t,
			ConvertedAmount:   converted[i].ConvertedAmount,
			ConvertedCurrency: converted[i].ConvertedCurrency,
		}
	}
	return out, nil
}

// Clear はユーザーの全目標を削除します。削除対象がない場合はErrTargetNotFoundを返します。
func (u *targetUsecase) Clear(ctx context.Context, userID uint) (int64, error) {
	deleted, err := u.targets.DeleteByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrTargetNotFound
	}
	return deleted, nil
}
