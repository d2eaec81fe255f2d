package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avetori/flownote/pkg/core"
)

type memRepo struct {
	snapshots map[string][]byte
}

func newMemRepo() *memRepo {
	return &memRepo{snapshots: make(map[string][]byte)}
}

func (r *memRepo) Initialize(ctx context.Context) error { return nil }

func (r *memRepo) Load(ctx context.Context, key string) ([]byte, error) {
	data, ok := r.snapshots[key]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (r *memRepo) Store(ctx context.Context, key string, data []byte) error {
	r.snapshots[key] = data
	return nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	svc := core.NewService(newMemRepo())
	svc.Load(context.Background())
	return New(svc)
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m tea.Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m.(Model)
}

func TestPickerOpensDiagram(t *testing.T) {
	m := newTestModel(t)
	if m.mode != modePick {
		t.Fatalf("expected picker mode, got %v", m.mode)
	}

	m = step(t, m, "enter")
	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode, got %v", m.mode)
	}
	if m.current.ID != "main" {
		t.Fatalf("expected main diagram first, got %q", m.current.ID)
	}
	if len(m.rows) == 0 {
		t.Fatal("expected rows for the main diagram")
	}
}

func TestBrowseRowsFollowDiagramOrder(t *testing.T) {
	m := step(t, newTestModel(t), "enter")
	for i, n := range m.current.Nodes {
		if m.rows[i].key != m.current.NodeKey(n.ID) {
			t.Fatalf("row %d: got key %q, want %q", i, m.rows[i].key, m.current.NodeKey(n.ID))
		}
	}
}

func TestEditCommitPersistsAnnotation(t *testing.T) {
	m := step(t, newTestModel(t), "enter", "e")
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode, got %v", m.mode)
	}

	m.deadlineInput.SetValue("2024-06-15")
	m.notesInput.SetValue("kickoff meeting")
	m = step(t, m, "ctrl+s")

	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode after commit, got %v", m.mode)
	}
	rec := m.svc.Annotation(m.rows[0].key)
	if rec.Deadline != "2024-06-15" || rec.Notes != "kickoff meeting" {
		t.Fatalf("unexpected record after commit: %+v", rec)
	}
}

func TestInvalidDeadlineKeepsSessionOpen(t *testing.T) {
	m := step(t, newTestModel(t), "enter", "e")
	m.deadlineInput.SetValue("June 15th")
	m = step(t, m, "ctrl+s")

	if m.mode != modeEdit {
		t.Fatal("expected the edit session to stay open on invalid deadline")
	}
	if m.sessions.Current() == nil {
		t.Fatal("expected an open session")
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	m := step(t, newTestModel(t), "enter", "e")
	m.deadlineInput.SetValue("2024-06-15")
	m = step(t, m, "esc")

	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode after cancel, got %v", m.mode)
	}
	if rec := m.svc.Annotation(m.rows[0].key); !rec.Empty() {
		t.Fatalf("cancel must not persist drafts, got %+v", rec)
	}
}

func TestAddSubNodeFlow(t *testing.T) {
	m := step(t, newTestModel(t), "enter")

	// Move the cursor to the first node that accepts sub-nodes.
	for m.cursor < len(m.rows)-1 && !m.rows[m.cursor].allowSub {
		m = step(t, m, "down")
	}
	parentKey := m.rows[m.cursor].key

	m = step(t, m, "a")
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode for new sub-node, got %v (status %q)", m.mode, m.status)
	}
	m.labelInput.SetValue("Login Screen")
	m = step(t, m, "ctrl+s")

	subs := m.svc.SubNodes(parentKey)
	if len(subs) != 1 || subs[0].Label != "Login Screen" {
		t.Fatalf("expected one sub-node 'Login Screen', got %+v", subs)
	}
	if subs[0].Placed {
		t.Fatal("new sub-node must start unplaced")
	}

	// The browser should now show the sub-node right under its parent.
	found := false
	for _, r := range m.rows {
		if r.isSub && r.parentKey == parentKey {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a sub-node row after creation")
	}
}

func TestEmptySubNodeLabelRejected(t *testing.T) {
	m := step(t, newTestModel(t), "enter")
	for m.cursor < len(m.rows)-1 && !m.rows[m.cursor].allowSub {
		m = step(t, m, "down")
	}
	m = step(t, m, "a")
	m.labelInput.SetValue("   ")
	m = step(t, m, "ctrl+s")

	if m.mode != modeEdit {
		t.Fatal("expected the session to stay open on empty label")
	}
	if !strings.Contains(m.status, "label") {
		t.Fatalf("expected a label error in the status, got %q", m.status)
	}
}

func TestViewRendersAnnotations(t *testing.T) {
	m := step(t, newTestModel(t), "enter", "e")
	m.deadlineInput.SetValue("2024-06-15")
	m = step(t, m, "ctrl+s")

	out := m.View()
	if !strings.Contains(out, "due 2024-06-15") {
		t.Fatalf("expected deadline badge in view, got:\n%s", out)
	}
}
