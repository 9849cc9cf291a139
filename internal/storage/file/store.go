// Package file implements the storage contract over flat JSON documents, one
// array per entity type under a data directory. Every read parses the whole
// file and every write rewrites the whole collection.
//
// There is no file locking: concurrent writers race and the last write wins at
// the file level. This backend is a single-process development fallback and
// must not be used under concurrent load.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ecem/goodworks/internal/storage"
)

const (
	usersFile  = "users.json"
	worksFile  = "works.json"
	newsFile   = "news.json"
	eventsFile = "events.json"
)

// Store reads and writes JSON collections under dataDir.
type Store struct {
	dataDir string
}

// New creates the data directory if needed and returns a file-backed store.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) Users() storage.UserStore   { return &userStore{s} }
func (s *Store) Works() storage.WorkStore   { return &workStore{s} }
func (s *Store) News() storage.NewsStore    { return &newsStore{s} }
func (s *Store) Events() storage.EventStore { return &eventStore{s} }

// Ping verifies the data directory is still accessible.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.dataDir); err != nil {
		return fmt.Errorf("data directory not accessible: %w", err)
	}
	return nil
}

// Close is a no-op; files are opened per operation.
func (s *Store) Close() error { return nil }

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// readCollection loads a JSON array from disk. A missing file is an empty
// collection, not an error.
func readCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// writeCollection serializes the whole collection back to disk.
func writeCollection[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
