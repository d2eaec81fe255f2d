package core

import "context"

// Snapshot keys. The persistence medium is a key-value store addressed by
// exactly these two keys, each holding a JSON snapshot of one mapping.
const (
	SnapshotAnnotations = "annotations"
	SnapshotSubNodes    = "subnodes"
)

// Repository defines the contract for the local snapshot store. Adhering
// to this interface keeps the core independent of the storage mechanism
// (filesystem, in-memory, browser storage, ...).
type Repository interface {
	// Initialize ensures the underlying storage is ready (e.g. create the
	// store directory).
	Initialize(ctx context.Context) error

	// Load returns the snapshot stored under key, or (nil, nil) when the
	// key has never been written.
	Load(ctx context.Context, key string) ([]byte, error)

	// Store replaces the snapshot under key wholesale.
	Store(ctx context.Context, key string, data []byte) error
}

// Watchable defines an interface for repositories that can observe
// external changes to the persisted snapshots.
type Watchable interface {
	// Watch emits an event whenever a snapshot matching pattern changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
