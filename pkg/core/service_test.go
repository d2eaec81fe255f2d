package core_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/avetori/flownote/pkg/core"
)

// MockRepository implements core.Repository in memory. It deliberately
// does NOT implement core.Watchable to test the unsupported path.
type MockRepository struct {
	snapshots map[string][]byte
	failStore bool
}

func NewMockRepository() *MockRepository {
	return &MockRepository{snapshots: make(map[string][]byte)}
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

func (m *MockRepository) Load(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.snapshots[key]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (m *MockRepository) Store(ctx context.Context, key string, data []byte) error {
	if m.failStore {
		return errors.New("store unavailable")
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.snapshots[key] = cp
	return nil
}

// annotationSnapshot decodes the persisted annotation mapping.
func (m *MockRepository) annotationSnapshot(t *testing.T) map[string]core.AnnotationRecord {
	t.Helper()
	out := make(map[string]core.AnnotationRecord)
	if data, ok := m.snapshots[core.SnapshotAnnotations]; ok {
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("malformed persisted snapshot: %v", err)
		}
	}
	return out
}

func TestService_UpsertGetRoundTrip(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)
	ctx := context.TODO()

	if err := service.Upsert(ctx, "main-start", "2024-01-01", "kickoff"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	rec := service.Annotation("main-start")
	if rec.Deadline != "2024-01-01" || rec.Notes != "kickoff" {
		t.Errorf("unexpected record: %+v", rec)
	}

	// The persisted snapshot is a complete serialization of the mapping.
	raw, ok := repo.snapshots[core.SnapshotAnnotations]
	if !ok {
		t.Fatal("expected annotation snapshot to be written")
	}
	want := `{"main-start":{"deadline":"2024-01-01","notes":"kickoff"}}`
	if string(raw) != want {
		t.Errorf("snapshot mismatch:\n got %s\nwant %s", raw, want)
	}
}

func TestService_UpsertTrimsInput(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)
	ctx := context.TODO()

	_ = service.Upsert(ctx, "main-start", "  2024-06-01  ", "  kickoff meeting \n")

	rec := service.Annotation("main-start")
	if rec.Deadline != "2024-06-01" {
		t.Errorf("deadline not trimmed: %q", rec.Deadline)
	}
	if rec.Notes != "kickoff meeting" {
		t.Errorf("notes not trimmed: %q", rec.Notes)
	}
}

func TestService_UpsertEmptyIsDelete(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)
	ctx := context.TODO()

	_ = service.Upsert(ctx, "k", "2099-01-01", "")
	if service.Annotation("k").Empty() {
		t.Fatal("expected record to be stored")
	}

	// Edit-to-empty deletes, it is not a no-op.
	_ = service.Upsert(ctx, "k", "", "")
	if !service.Annotation("k").Empty() {
		t.Error("expected empty record after edit-to-empty")
	}
	if _, ok := repo.annotationSnapshot(t)["k"]; ok {
		t.Error("key must be absent from the serialized snapshot")
	}
}

func TestService_UpsertWhitespaceOnlyIsDelete(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)
	ctx := context.TODO()

	_ = service.Upsert(ctx, "k", "   ", " \t ")
	if !service.Annotation("k").Empty() {
		t.Error("whitespace-only input must normalize to absent")
	}
	if _, ok := repo.annotationSnapshot(t)["k"]; ok {
		t.Error("key must not appear in the snapshot")
	}
}

func TestService_RemoveAbsentIsNoop(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)
	ctx := context.TODO()

	if err := service.Remove(ctx, "never-stored"); err != nil {
		t.Fatalf("Remove of absent key must not fail: %v", err)
	}
}

func TestService_SaveFailureKeepsMemoryState(t *testing.T) {
	repo := NewMockRepository()
	repo.failStore = true
	service := core.NewService(repo)
	ctx := context.TODO()

	if err := service.Upsert(ctx, "main-start", "2024-01-01", "kickoff"); err != nil {
		t.Fatalf("persistence failure must not surface: %v", err)
	}

	// In-memory state remains correct even though the write was skipped.
	if service.Annotation("main-start").Deadline != "2024-01-01" {
		t.Error("in-memory state lost after failed save")
	}
	if _, ok := repo.snapshots[core.SnapshotAnnotations]; ok {
		t.Error("no snapshot should have been written")
	}
}

func TestService_LoadMalformedSnapshotStartsEmpty(t *testing.T) {
	repo := NewMockRepository()
	repo.snapshots[core.SnapshotAnnotations] = []byte("{not json")
	repo.snapshots[core.SnapshotSubNodes] = []byte("[broken")

	service := core.NewService(repo)
	service.Load(context.TODO())

	if len(service.Annotations()) != 0 {
		t.Error("malformed annotation snapshot must load as empty")
	}
	if len(service.AllSubNodes()) != 0 {
		t.Error("malformed sub-node snapshot must load as empty")
	}
}

func TestService_LoadRoundTrip(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.TODO()

	first := core.NewService(repo)
	_ = first.Upsert(ctx, "main-start", "2024-01-01", "kickoff")
	_, err := first.CreateSubNode(ctx, "main-flutter-screens", "Login Screen", "2024-02-01", "blocked on design")
	if err != nil {
		t.Fatalf("CreateSubNode failed: %v", err)
	}

	second := core.NewService(repo)
	second.Load(ctx)

	if second.Annotation("main-start").Notes != "kickoff" {
		t.Error("annotation mapping did not survive reload")
	}
	subs := second.SubNodes("main-flutter-screens")
	if len(subs) != 1 || subs[0].Label != "Login Screen" {
		t.Errorf("sub-node mapping did not survive reload: %+v", subs)
	}
	key := core.SubKey("main-flutter-screens", subs[0].ID)
	if second.Annotation(key).Deadline != "2024-02-01" {
		t.Error("derived sub-node annotation did not survive reload")
	}
}

func TestService_WatchUnsupported(t *testing.T) {
	service := core.NewService(NewMockRepository())

	if _, err := service.Watch(context.TODO(), "*"); err == nil {
		t.Fatal("expected error for non-watchable repo")
	}
}
