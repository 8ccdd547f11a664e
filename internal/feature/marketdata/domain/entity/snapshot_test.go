package entity

import (
	"testing"
	"time"
)

func TestFreshAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		snap *Snapshot
		now  time.Time
		want bool
	}{
		{
			name: "same UTC day",
			snap: &Snapshot{RetrievedAt: time.Date(2026, 8, 29, 0, 0, 1, 0, time.UTC)},
			now:  time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "previous UTC day",
			snap: &Snapshot{RetrievedAt: time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC)},
			now:  time.Date(2026, 8, 29, 0, 0, 1, 0, time.UTC),
			want: false,
		},
		{
			// ローカルタイムゾーンに関わらずUTC暦日で判定する
			name: "now in non-UTC zone, same UTC day",
			snap: &Snapshot{RetrievedAt: time.Date(2026, 8, 29, 1, 0, 0, 0, time.UTC)},
			now:  time.Date(2026, 8, 29, 18, 0, 0, 0, time.FixedZone("JST", 9*60*60)),
			want: true,
		},
		{
			name: "nil snapshot",
			snap: nil,
			now:  time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "zero snapshot",
			snap: &Snapshot{},
			now:  time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.FreshAt(tt.now); got != tt.want {
				t.Errorf("FreshAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPairTicker(t *testing.T) {
	t.Parallel()

	if got := PairTicker("usd", "hkd"); got != "USDHKD=X" {
		t.Errorf("PairTicker() = %q, want USDHKD=X", got)
	}
}

func TestCryptoTicker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
	}{
		{code: "btc", want: "BTC-USD"},
		{code: "BTC", want: "BTC-USD"},
		{code: "BTC-USD", want: "BTC-USD"},
		{code: "eth-usd", want: "ETH-USD"},
	}
	for _, tt := range tests {
		if got := CryptoTicker(tt.code); got != tt.want {
			t.Errorf("CryptoTicker(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
