// Package flownote is the composition root for the flownote application.
//
// It connects the core annotation store (Domain Layer) with the local
// snapshot persistence (Adapter Layer).
//
// Philosophy:
//
// Flownote renders a fixed, hand-authored set of flowchart diagrams (the
// clinic-management rollout workflow) and lets the user attach deadlines
// and free-text notes to any diagram node, including user-created
// sub-nodes. The diagrams themselves are literal constants; the store and
// its edit protocol are the system.
//
// Features:
//
//   - **Keyed Annotation Store**: (diagram, node) keys map to optional
//     deadline/notes records; absence is the "no annotation" state.
//   - **Snapshot Persistence**: every mutation synchronously re-serializes
//     the full mapping to a local key-value snapshot store.
//   - **Sub-Nodes**: user-created child nodes with lazy placement and
//     drag-style repositioning, annotated through derived keys.
//   - **Watchable**: snapshot files can be observed for external changes.
//   - **Extensible**: any storage backend via core.Repository.
//
// Usage:
//
//	// Initialize the service with functional options
//	svc, err := flownote.New(
//		flownote.WithStoreDir(dir),
//		flownote.WithLogger(logger),
//	)
//
//	// Annotate a node
//	err = svc.Upsert(ctx, "main-start", "2024-01-01", "kickoff")
package flownote
