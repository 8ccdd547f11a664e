package usecase

import (
	"context"
	"testing"
	"time"

	"finance_backend/internal/feature/transactions/domain/entity"
)

// mockTransactionRepo はTransactionRepositoryインターフェースのモック実装です。
type mockTransactionRepo struct {
	CreateFunc       func(ctx context.Context, tx *entity.Transaction) error
	FindByUserIDFunc func(ctx context.Context, userID uint) ([]entity.Transaction, error)
}

func (m *mockTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	return nil
}

func (m *mockTransactionRepo) FindByUserID(ctx context.Context, userID uint) ([]entity.Transaction, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		category string
		currency string
		date     string
		wantType string
		wantCur  string
		wantDate time.Time
		wantErr  bool
	}{
		{
			name:     "date only",
			typ:      " Expense ",
			category: "Food",
			currency: "usd",
			date:     "2026-08-01",
			wantType: "expense",
			wantCur:  "USD",
			wantDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339",
			typ:      "income",
			category: "salary",
			currency: "jpy",
			date:     "2026-08-01T09:30:00Z",
			wantType: "income",
			wantCur:  "JPY",
			wantDate: time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "invalid date",
			typ:     "expense",
			date:    "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *entity.Transaction
			repo := &mockTransactionRepo{
				CreateFunc: func(ctx context.Context, tx *entity.Transaction) error {
					created = tx
					return nil
				},
			}
			uc := NewTransactionUsecase(repo)

			got, err := uc.Add(context.Background(), 1, tt.typ, tt.category, tt.currency, 12.5, tt.date)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if created != nil {
					t.Error("invalid date must not reach the repository")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// 種別・カテゴリは小文字、通貨は大文字に正規化される
			if got.Type != tt.wantType {
				t.Errorf("expected type %q, got %q", tt.wantType, got.Type)
			}
			if got.CurrencyType != tt.wantCur {
				t.Errorf("expected currency %q, got %q", tt.wantCur, got.CurrencyType)
			}
			if !got.Date.Equal(tt.wantDate) {
				t.Errorf("expected date %v, got %v", tt.wantDate, got.Date)
			}
		})
	}
}

func TestList(t *testing.T) {
	want := []entity.Transaction{
		{ID: 2, Date: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 1, Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
	}
	repo := &mockTransactionRepo{
		FindByUserIDFunc: func(ctx context.Context, userID uint) ([]entity.Transaction, error) {
			if userID != 7 {
				t.Errorf("unexpected userID: %d", userID)
			}
			return want, nil
		},
	}
	uc := NewTransactionUsecase(repo)

	got, err := uc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Errorf("expected repository order preserved, got %v", got)
	}
}
