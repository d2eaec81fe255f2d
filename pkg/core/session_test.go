package core_test

import (
	"context"
	"testing"

	"github.com/avetori/flownote/pkg/core"
)

func TestSession_OpenPrefillsDrafts(t *testing.T) {
	service := core.NewService(NewMockRepository())
	ctx := context.TODO()
	_ = service.Upsert(ctx, "main-start", "2024-01-01", "kickoff")

	mgr := core.NewSessionManager(service)
	sess := mgr.OpenNode("main-start")

	if sess.Deadline != "2024-01-01" || sess.Notes != "kickoff" {
		t.Errorf("drafts not pre-filled: %+v", sess)
	}
}

func TestSession_CommitUpsertsAndCloses(t *testing.T) {
	service := core.NewService(NewMockRepository())
	ctx := context.TODO()

	mgr := core.NewSessionManager(service)
	sess := mgr.OpenNode("main-start")
	sess.Deadline = "2025-05-05"
	sess.Notes = "revised"

	if err := mgr.Commit(ctx); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if mgr.Current() != nil {
		t.Error("commit must close the session")
	}
	if service.Annotation("main-start").Deadline != "2025-05-05" {
		t.Error("commit did not reach the store")
	}
}

func TestSession_CancelDiscardsDrafts(t *testing.T) {
	service := core.NewService(NewMockRepository())
	ctx := context.TODO()
	_ = service.Upsert(ctx, "k", "2024-01-01", "original")

	mgr := core.NewSessionManager(service)
	sess := mgr.OpenNode("k")
	sess.Notes = "never saved"
	mgr.Cancel()

	if mgr.Current() != nil {
		t.Error("cancel must close the session")
	}
	if service.Annotation("k").Notes != "original" {
		t.Error("cancel must not mutate the store")
	}
}

func TestSession_OpenReplacesOpenSession(t *testing.T) {
	service := core.NewService(NewMockRepository())
	mgr := core.NewSessionManager(service)

	first := mgr.OpenNode("a")
	first.Notes = "unsaved draft"

	second := mgr.OpenNode("b")
	if mgr.Current() != second {
		t.Error("opening a new session must replace the old one")
	}
	if !service.Annotation("a").Empty() {
		t.Error("replaced session drafts must be discarded, not committed")
	}
}

func TestSession_EmptyLabelKeepsSessionOpen(t *testing.T) {
	service := core.NewService(NewMockRepository())
	ctx := context.TODO()

	mgr := core.NewSessionManager(service)
	sess := mgr.OpenNewSubNode("main-flutter-screens")
	sess.Label = "   "

	if err := mgr.Commit(ctx); err != core.ErrEmptyLabel {
		t.Fatalf("expected ErrEmptyLabel, got %v", err)
	}
	if mgr.Current() == nil {
		t.Error("rejected commit must leave the session open for correction")
	}
}

func TestSession_SubNodeEditFlow(t *testing.T) {
	service := core.NewService(NewMockRepository())
	ctx := context.TODO()
	sub, _ := service.CreateSubNode(ctx, "p", "Login Screen", "2030-01-01", "wip")

	mgr := core.NewSessionManager(service)
	if mgr.OpenSubNode("p", "missing") != nil {
		t.Error("unknown sub-node must not open a session")
	}

	sess := mgr.OpenSubNode("p", sub.ID)
	if sess == nil || sess.Label != "Login Screen" || sess.Deadline != "2030-01-01" {
		t.Fatalf("sub-node session not pre-filled: %+v", sess)
	}

	sess.Label = "Login + MFA"
	sess.Deadline = ""
	sess.Notes = ""
	if err := mgr.Commit(ctx); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if service.SubNodes("p")[0].Label != "Login + MFA" {
		t.Error("label edit not applied")
	}
	if !service.Annotation(core.SubKey("p", sub.ID)).Empty() {
		t.Error("clearing both fields must delete the derived annotation")
	}
}
