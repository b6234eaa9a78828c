package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard"
	"github.com/mrigeshkoyande/NeuroNest-AI/pkg/logger"
	"github.com/mrigeshkoyande/NeuroNest-AI/pkg/metrics"
)

// Store owns the single persistent JSON document. All reads and mutations go
// through View/Update, which serialize access with one mutex so every request
// observes a consistent pre-state and commits before the next is applied.
type Store struct {
	mu   sync.Mutex
	path string
	data *dashboard.Data
}

// Open loads the document at path, or seeds it with the default dataset when
// no file exists yet. A present-but-unreadable file is an error: the seed must
// never silently replace existing data.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store: empty path")
	}

	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var d dashboard.Data
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("store: parse %s: %w", path, err)
		}
		s.data = &d
		logger.Infof("store: loaded %s", path)
	case os.IsNotExist(err):
		s.data = dashboard.DefaultData()
		if err := s.write(); err != nil {
			return nil, fmt.Errorf("store: seed %s: %w", path, err)
		}
		logger.Infof("store: seeded %s with default dataset", path)
	default:
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	return s, nil
}

// View runs fn with read access to the document under the store lock.
func (s *Store) View(fn func(d *dashboard.Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

// Update runs fn under the store lock and, when fn succeeds, persists the
// whole document before returning. A persistence failure is returned to the
// caller; the in-memory mutation is kept and the failure logged, so disk may
// lag memory by at most the last uncommitted operation.
func (s *Store) Update(fn func(d *dashboard.Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.data); err != nil {
		return err
	}
	if err := s.write(); err != nil {
		metrics.StoreWriteErrors.Inc()
		logger.Errorf("store: persist %s: %v", s.path, err)
		return fmt.Errorf("store: persist: %w", err)
	}
	metrics.StoreWrites.Inc()
	return nil
}

// write serializes the full document and replaces the file via rename, so a
// crash mid-write never leaves a truncated document behind.
func (s *Store) write() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
