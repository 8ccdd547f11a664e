package usecase

import (
	"context"
	"errors"
	"testing"

	"finance_backend/internal/feature/marketdata/domain/entity"
)

// mockSnapshots はSnapshotProviderインターフェースのモック実装です。
type mockSnapshots struct {
	GetSnapshotFunc func(ctx context.Context, currencies, stocks, cryptos []string) (*entity.Snapshot, error)
	calls           int
}

func (m *mockSnapshots) GetSnapshot(ctx context.Context, currencies, stocks, cryptos []string) (*entity.Snapshot, error) {
	m.calls++
	if m.GetSnapshotFunc != nil {
		return m.GetSnapshotFunc(ctx, currencies, stocks, cryptos)
	}
	return &entity.Snapshot{}, nil
}

func snapshotWithRates(rates map[string]float64) *mockSnapshots {
	return &mockSnapshots{
		GetSnapshotFunc: func(ctx context.Context, currencies, stocks, cryptos []string) (*entity.Snapshot, error) {
			return &entity.Snapshot{Currency: rates}, nil
		},
	}
}

// TestConvert_Identity は同一通貨間の換算がスナップショットを取得せずに
// 金額をそのまま返すことを検証します。
func TestConvert_Identity(t *testing.T) {
	t.Parallel()

	snaps := &mockSnapshots{}
	uc := NewConvertUsecase(snaps)

	got, err := uc.Convert(context.Background(), 100, "usd", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Errorf("identity conversion must return the amount unchanged, got %v", got)
	}
	if snaps.calls != 0 {
		t.Errorf("identity conversion must not fetch a snapshot, got %d calls", snaps.calls)
	}
}

func TestConvert_UsesDirectedRate(t *testing.T) {
	t.Parallel()

	uc := NewConvertUsecase(snapshotWithRates(map[string]float64{
		"USDHKD=X": 7.8,
		"HKDUSD=X": 0.128,
	}))

	got, err := uc.Convert(context.Background(), 100, "USD", "HKD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 780 {
		t.Errorf("expected 780, got %v", got)
	}
}

func TestConvert_RateNotFound(t *testing.T) {
	t.Parallel()

	uc := NewConvertUsecase(snapshotWithRates(map[string]float64{"USDHKD=X": 7.8}))

	_, err := uc.Convert(context.Background(), 100, "JPY", "EUR")
	if !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("expected ErrRateNotFound, got %v", err)
	}
}

// TestConvert_NilCurrencyMap は通貨フェッチ失敗でCurrencyがnilのスナップショット
// でもpanicせずErrRateNotFoundになることを検証します。
func TestConvert_NilCurrencyMap(t *testing.T) {
	t.Parallel()

	uc := NewConvertUsecase(&mockSnapshots{})

	_, err := uc.Convert(context.Background(), 100, "USD", "HKD")
	if !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("expected ErrRateNotFound, got %v", err)
	}
}

// TestConvertItems は混在リストの一括換算を検証します。
// スナップショットの取得はリスト全体で高々1回です。
func TestConvertItems(t *testing.T) {
	t.Parallel()

	snaps := snapshotWithRates(map[string]float64{"USDHKD=X": 7.8})
	uc := NewConvertUsecase(snaps)

	items := []Item{
		{Currency: "HKD", Amount: 50},  // 既にターゲット通貨
		{Currency: "usd", Amount: 100}, // 換算が必要
	}
	got, err := uc.ConvertItems(context.Background(), items, "hkd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got[0].ConvertedAmount != 50 || got[0].ConvertedCurrency != "HKD" {
		t.Errorf("target-currency item must pass through: %+v", got[0])
	}
	if got[1].ConvertedAmount != 780 || got[1].ConvertedCurrency != "HKD" {
		t.Errorf("unexpected converted item: %+v", got[1])
	}
	if snaps.calls != 1 {
		t.Errorf("expected at most 1 snapshot fetch, got %d", snaps.calls)
	}
}

// TestConvertItems_AllTargetCurrency は全アイテムが既にターゲット通貨の場合、
// スナップショットを取得しないことを検証します。
func TestConvertItems_AllTargetCurrency(t *testing.T) {
	t.Parallel()

	snaps := &mockSnapshots{}
	uc := NewConvertUsecase(snaps)

	items := []Item{{Currency: "USD", Amount: 10}, {Currency: "usd", Amount: 20}}
	got, err := uc.ConvertItems(context.Background(), items, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, item := range got {
		if item.ConvertedAmount != items[i].Amount {
			t.Errorf("item %d: expected pass-through amount, got %+v", i, item)
		}
	}
	if snaps.calls != 0 {
		t.Errorf("expected no snapshot fetch, got %d calls", snaps.calls)
	}
}
