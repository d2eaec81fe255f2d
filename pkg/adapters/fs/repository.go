// Package fs implements the snapshot repository on the local filesystem.
// Each snapshot key maps to one JSON file inside the store directory.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// snapshotExt is the file extension used for persisted snapshots.
const snapshotExt = ".json"

// Config holds the configuration for the filesystem repository.
type Config struct {
	Dir         string
	Logger      *slog.Logger
	EventBuffer int // buffer size of the Watch event channel
}

// Repository implements core.Repository using one file per snapshot key.
type Repository struct {
	Dir    string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// NewRepository creates a new filesystem-backed snapshot repository.
func NewRepository(config Config) *Repository {
	if config.EventBuffer <= 0 {
		config.EventBuffer = 16
	}
	return &Repository{
		Dir:    config.Dir,
		config: config,
	}
}

// Initialize ensures the store directory exists.
func (r *Repository) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Load returns the snapshot stored under key. A key that was never written
// yields (nil, nil): the missing file simply means an empty mapping.
func (r *Repository) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(r.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return data, nil
}

// Store replaces the snapshot under key wholesale. The write goes through
// a temp file and rename so a crash never leaves a half-written snapshot.
func (r *Repository) Store(ctx context.Context, key string, data []byte) error {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := writeFileAtomic(r.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}

// path maps a snapshot key to its file.
func (r *Repository) path(key string) string {
	return filepath.Join(r.Dir, key+snapshotExt)
}

// keyForPath maps a file path back to its snapshot key, or "" when the
// path is not a snapshot file (temp files, hidden files, other extensions).
func (r *Repository) keyForPath(path string) string {
	base := filepath.Base(path)
	if strings.HasPrefix(base, TempFilePrefix) || strings.HasPrefix(base, ".") {
		return ""
	}
	if !strings.HasSuffix(base, snapshotExt) {
		return ""
	}
	return strings.TrimSuffix(base, snapshotExt)
}

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
