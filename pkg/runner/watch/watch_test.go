package watch

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/store"
)

type testConfig struct{ path string }

func (t testConfig) BasePath() string   { return t.path }
func (t testConfig) ConfigFile() string { return "" }

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchRedrawsOnExternalWrite(t *testing.T) {
	cfg := testConfig{path: t.TempDir()}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	out := &syncBuffer{}
	w := Watch{Planner: planner.Open(ctx, p), Persistence: p, Out: out}

	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), "0  subjects") {
		if time.Now().After(deadline) {
			t.Fatalf("initial dashboard not rendered: %q", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}

	other, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open second: %v", err)
	}
	if _, err := planner.Open(ctx, other).AddSubject(ctx, "Math", model.PriorityHigh); err != nil {
		t.Fatalf("add subject: %v", err)
	}

	for !strings.Contains(out.String(), "1  subjects") {
		if time.Now().After(deadline) {
			t.Fatalf("dashboard not redrawn: %q", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
}

func TestWatchRequiresStore(t *testing.T) {
	w := Watch{}
	if err := w.Do(context.Background()); err == nil {
		t.Fatalf("expected error without store")
	}
}
