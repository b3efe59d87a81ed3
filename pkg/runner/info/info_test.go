package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/planner/pkg/store"
)

type testConfig struct{ path string }

func (t testConfig) BasePath() string   { return t.path }
func (t testConfig) ConfigFile() string { return "" }

func TestInfoListsKeys(t *testing.T) {
	t.Setenv("PLANNER_CONFIG_PATH", "")
	cfg := testConfig{path: t.TempDir()}
	p, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var out bytes.Buffer
	n := Info{Config: cfg, Persistence: p, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), "no stored data") {
		t.Fatalf("expected empty marker, got %q", out.String())
	}

	if err := store.Save(p, store.KeyTasks, []string{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out.Reset()
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), "  "+store.KeyTasks+"\n") {
		t.Fatalf("expected %s listed, got %q", store.KeyTasks, out.String())
	}
	if !strings.Contains(out.String(), "Config.path: "+cfg.path) {
		t.Fatalf("expected config path, got %q", out.String())
	}
}

func TestInfoRequiresPersistence(t *testing.T) {
	n := Info{Config: testConfig{path: t.TempDir()}, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
}
