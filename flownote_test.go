package flownote_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetori/flownote"
)

func TestNew_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svc, err := flownote.New(flownote.WithStoreDir(dir))
	require.NoError(t, err)
	require.NoError(t, svc.Upsert(ctx, "main-start", "2024-01-01", "kickoff"))

	reopened, err := flownote.New(flownote.WithStoreDir(dir))
	require.NoError(t, err)

	rec := reopened.Annotation("main-start")
	assert.Equal(t, "2024-01-01", rec.Deadline)
	assert.Equal(t, "kickoff", rec.Notes)
}

func TestNew_FreshDirStartsEmpty(t *testing.T) {
	svc, err := flownote.New(flownote.WithStoreDir(t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, svc.Annotations())
	assert.Empty(t, svc.AllSubNodes())
}

func TestNew_InjectedClock(t *testing.T) {
	frozen := time.Date(2020, 1, 1, 12, 0, 0, 0, time.Local)
	svc, err := flownote.New(
		flownote.WithStoreDir(t.TempDir()),
		flownote.WithClock(func() time.Time { return frozen }),
	)
	require.NoError(t, err)

	assert.True(t, svc.Overdue("2019-12-31"))
	assert.False(t, svc.Overdue("2020-01-01"))
}
