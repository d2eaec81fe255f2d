package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/avetori/flownote/pkg/core"
)

func TestSourceForwardsEvents(t *testing.T) {
	in := make(chan core.Event, 1)
	src := NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := src.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	want := core.Event{Type: core.EventModify, Key: "annotations", Timestamp: time.Now().Unix()}
	in <- want

	select {
	case got := <-src.Events():
		ev, ok := got.(core.Event)
		if !ok {
			t.Fatalf("expected a core.Event, got %T", got)
		}
		if ev.Key != want.Key || ev.Type != want.Type {
			t.Fatalf("got %+v, want %+v", ev, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for forwarded event")
	}
}

func TestSourceClosesOnInputClose(t *testing.T) {
	in := make(chan core.Event)
	src := NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := src.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	close(in)

	select {
	case _, ok := <-src.Events():
		if ok {
			t.Fatal("expected the output channel to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
