package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"finance_backend/internal/feature/marketdata/domain/entity"
	"finance_backend/internal/feature/marketdata/usecase"
)

// SnapshotFile implements usecase.SnapshotStore on a single JSON file.
// It is the fallback store when Redis is not configured.
type SnapshotFile struct {
	path string
	mu   sync.Mutex
}

var _ usecase.SnapshotStore = (*SnapshotFile)(nil)

// NewSnapshotFile creates a file-backed snapshot store. If path is empty it
// uses "finance_data_cache/data.json".
func NewSnapshotFile(path string) *SnapshotFile {
	if path == "" {
		path = filepath.Join("finance_data_cache", "data.json")
	}
	return &SnapshotFile{path: path}
}

// Load returns the stored snapshot, or (nil, nil) when the file does not exist.
func (s *SnapshotFile) Load(ctx context.Context) (*entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot cache: %w", err)
	}
	return &snap, nil
}

// Save overwrites the snapshot file. The write goes through a temp file and
// rename so a concurrent last-write-wins never leaves a torn file behind.
func (s *SnapshotFile) Save(ctx context.Context, snap *entity.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "snapshot-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
