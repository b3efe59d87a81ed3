package store

import (
	"context"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) ConfigFile() string {
	return ""
}

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to start before writing.
	time.Sleep(50 * time.Millisecond)

	if err := Save(p, KeyTasks, []string{"hello"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventStoreInvalidated {
				return
			}
			if evt.Key != KeyTasks {
				t.Fatalf("expected key %q, got %q", KeyTasks, evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestKeyForPathIgnoresHiddenAndNested(t *testing.T) {
	p := &persistence{basePath: "/tmp/planner"}
	if got := p.keyForPath("/tmp/planner/sp_tasks"); got != "sp_tasks" {
		t.Fatalf("expected sp_tasks, got %q", got)
	}
	if got := p.keyForPath("/tmp/planner/.planner.yaml"); got != "" {
		t.Fatalf("expected hidden file to be ignored, got %q", got)
	}
	if got := p.keyForPath("/tmp/planner/nested/sp_tasks"); got != "" {
		t.Fatalf("expected nested file to be ignored, got %q", got)
	}
}
