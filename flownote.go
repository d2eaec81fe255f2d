package flownote

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/avetori/flownote/pkg/adapters/fs"
	"github.com/avetori/flownote/pkg/core"
)

// Version exposes the version of the application.
const Version = "0.4.0"

// DefaultStoreDirName is the hidden directory under the user's home that
// holds the persisted snapshots.
const DefaultStoreDirName = ".flownote"

// options holds the internal configuration for the flownote service.
type options struct {
	storeDir    string
	repository  core.Repository
	logger      *slog.Logger
	clock       func() time.Time
	eventBuffer int
}

// Option defines a functional option for configuring flownote.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		eventBuffer: 16,
	}
}

// WithStoreDir sets the directory holding the snapshot files.
func WithStoreDir(dir string) Option {
	return func(o *options) { o.storeDir = dir }
}

// WithLogger sets the logger for the service and adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) { o.repository = repo }
}

// WithClock injects the time source used for overdue checks.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithEventBuffer sets the size of the watch event channel buffer.
func WithEventBuffer(size int) Option {
	return func(o *options) { o.eventBuffer = size }
}

// DefaultStoreDir resolves the default snapshot directory (~/.flownote).
func DefaultStoreDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultStoreDirName), nil
}

// Init initializes a repository explicitly.
func Init(opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	dir := o.storeDir
	if dir == "" {
		var err error
		if dir, err = DefaultStoreDir(); err != nil {
			return nil, err
		}
	}

	repo := fs.NewRepository(fs.Config{
		Dir:         dir,
		Logger:      o.logger,
		EventBuffer: o.eventBuffer,
	})
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// New creates the flownote Service: it wires the snapshot repository,
// hydrates both mappings and returns the ready store.
func New(opts ...Option) (*core.Service, error) {
	repo, err := Init(opts...)
	if err != nil {
		return nil, err
	}

	// Parse options again to get the wiring for the service itself.
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	svcOpts := []core.ServiceOption{}
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithLogger(o.logger))
	}
	if o.clock != nil {
		svcOpts = append(svcOpts, core.WithClock(o.clock))
	}

	service := core.NewService(repo, svcOpts...)
	service.Load(context.Background())

	return service, nil
}
