package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetori/flownote/pkg/adapters/fs"
	"github.com/avetori/flownote/pkg/core"
)

func newTestRepo(t *testing.T) (*fs.Repository, string) {
	t.Helper()
	dir := t.TempDir()
	repo := fs.NewRepository(fs.Config{Dir: dir})
	require.NoError(t, repo.Initialize(context.Background()))
	return repo, dir
}

func TestRepository_LoadMissingKeyIsAbsent(t *testing.T) {
	repo, _ := newTestRepo(t)

	data, err := repo.Load(context.Background(), core.SnapshotAnnotations)
	require.NoError(t, err)
	assert.Nil(t, data, "a never-written key must read as absent, not as an error")
}

func TestRepository_StoreLoadRoundTrip(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()

	snapshot := []byte(`{"main-start":{"deadline":"2024-01-01","notes":"kickoff"}}`)
	require.NoError(t, repo.Store(ctx, core.SnapshotAnnotations, snapshot))

	data, err := repo.Load(ctx, core.SnapshotAnnotations)
	require.NoError(t, err)
	assert.Equal(t, snapshot, data)

	// One file per snapshot key.
	_, err = os.Stat(filepath.Join(dir, "annotations.json"))
	assert.NoError(t, err)
}

func TestRepository_StoreReplacesWholesale(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, core.SnapshotSubNodes, []byte(`{"a":[]}`)))
	require.NoError(t, repo.Store(ctx, core.SnapshotSubNodes, []byte(`{"b":[]}`)))

	data, err := repo.Load(ctx, core.SnapshotSubNodes)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":[]}`, string(data))
}

func TestRepository_StoreLeavesNoTempFiles(t *testing.T) {
	repo, dir := newTestRepo(t)

	require.NoError(t, repo.Store(context.Background(), core.SnapshotAnnotations, []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), fs.TempFilePrefix)
	}
}

func TestRepository_StoreCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")
	repo := fs.NewRepository(fs.Config{Dir: dir})

	// Store without a prior Initialize still succeeds.
	require.NoError(t, repo.Store(context.Background(), core.SnapshotAnnotations, []byte(`{}`)))

	data, err := repo.Load(context.Background(), core.SnapshotAnnotations)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)
}

func TestRepository_ServiceEndToEnd(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	svc := core.NewService(repo)
	svc.Load(ctx)
	require.NoError(t, svc.Upsert(ctx, "main-start", "2024-01-01", "kickoff"))

	// A fresh service over the same directory sees the same state.
	reopened := core.NewService(repo)
	reopened.Load(ctx)
	assert.Equal(t, "kickoff", reopened.Annotation("main-start").Notes)
}
