package entity

import "time"

// Snapshot is one cached, timestamped bundle of currency rates and stock and
// crypto bars. A Snapshot is immutable once constructed; a refresh produces a
// new Snapshot that replaces the cached one.
type Snapshot struct {
	// RetrievedAt is the UTC instant the snapshot was fetched.
	// It is set once at fetch time and never mutated.
	RetrievedAt time.Time `json:"timeRetrieved"`

	// Currency maps a directed pair ticker ("USDHKD=X") to its close price.
	// It is nil when the whole currency basket fetch failed.
	Currency map[string]float64 `json:"currency"`

	// Stock maps a stock symbol to at most one Bar (the latest sample).
	// A symbol whose fetch failed maps to an empty slice, never a missing key.
	Stock map[string][]Bar `json:"stock"`

	// Crypto has the same shape as Stock, keyed by suffixed symbols ("BTC-USD").
	Crypto map[string][]Bar `json:"crypto"`
}

// FreshAt reports whether the snapshot was retrieved on the same UTC calendar
// day as now. Snapshots from a previous day are stale and must be refreshed.
func (s *Snapshot) FreshAt(now time.Time) bool {
	if s == nil {
		return false
	}
	ry, rm, rd := s.RetrievedAt.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	return ry == ny && rm == nm && rd == nd
}
