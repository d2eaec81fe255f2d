package core_test

import (
	"testing"
	"time"

	"github.com/avetori/flownote/pkg/core"
)

func TestNodeKey_Deterministic(t *testing.T) {
	if core.NodeKey("main", "start") != "main-start" {
		t.Errorf("unexpected key: %s", core.NodeKey("main", "start"))
	}
	if core.NodeKey("main", "start") != core.NodeKey("main", "start") {
		t.Error("identical pairs must produce identical keys")
	}
	if core.NodeKey("main", "flutter-screens") != "main-flutter-screens" {
		t.Errorf("unexpected key: %s", core.NodeKey("main", "flutter-screens"))
	}
}

func TestSubKey_Derivation(t *testing.T) {
	key := core.SubKey("main-flutter-screens", "abc123")
	if key != "main-flutter-screens_sub_abc123" {
		t.Errorf("unexpected sub-key: %s", key)
	}
}

func TestNewRecord_Normalization(t *testing.T) {
	if !core.NewRecord("  ", "\t\n").Empty() {
		t.Error("whitespace-only inputs must produce an empty record")
	}
	rec := core.NewRecord(" 2024-01-01 ", " note ")
	if rec.Deadline != "2024-01-01" || rec.Notes != "note" {
		t.Errorf("inputs not trimmed: %+v", rec)
	}
}

func TestOverdueAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.Local)

	cases := []struct {
		deadline string
		want     bool
	}{
		{"2000-01-01", true},
		{"2024-06-14", true},
		{"2024-06-15", false}, // due today is not overdue
		{"2024-06-16", false},
		{"", false},
		{"not-a-date", false},
		{"2024-13-99", false},
	}
	for _, tc := range cases {
		if got := core.OverdueAt(tc.deadline, now); got != tc.want {
			t.Errorf("OverdueAt(%q) = %v, want %v", tc.deadline, got, tc.want)
		}
	}
}

func TestOverdueAt_IgnoresTimeOfDay(t *testing.T) {
	// Just after midnight, yesterday's deadline is already overdue.
	now := time.Date(2024, 6, 15, 0, 0, 1, 0, time.Local)
	if !core.OverdueAt("2024-06-14", now) {
		t.Error("comparison must truncate to midnight")
	}
}
