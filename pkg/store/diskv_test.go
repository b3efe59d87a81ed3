package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openTemp(t *testing.T) (Persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	return p, base
}

func TestLoadMissingReturnsFallback(t *testing.T) {
	p, _ := openTemp(t)
	got := Load(context.Background(), p, KeySubjects, []record{{ID: "fallback"}})
	if len(got) != 1 || got[0].ID != "fallback" {
		t.Fatalf("expected fallback, got %+v", got)
	}
}

func TestLoadCorruptOrNullReturnsFallback(t *testing.T) {
	p, base := openTemp(t)
	cases := map[string]string{
		KeySubjects: "{not json",
		KeyTasks:    "null",
		KeySessions: "   ",
		KeySettings: `"a string"`,
	}
	for key, content := range cases {
		if err := os.WriteFile(filepath.Join(base, key), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", key, err)
		}
	}
	ctx := context.Background()
	if got := Load(ctx, p, KeySubjects, []record{}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty fallback for corrupt value, got %#v", got)
	}
	if got := Load(ctx, p, KeyTasks, []record{{ID: "x"}}); len(got) != 1 {
		t.Fatalf("expected fallback for null value, got %#v", got)
	}
	if got := Load(ctx, p, KeySessions, []record{{ID: "y"}}); len(got) != 1 {
		t.Fatalf("expected fallback for blank value, got %#v", got)
	}
	type settings struct {
		Dark bool `json:"dark"`
	}
	if got := Load(ctx, p, KeySettings, settings{Dark: true}); !got.Dark {
		t.Fatalf("expected fallback for mistyped value, got %#v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, base := openTemp(t)
	want := []record{{ID: "1", Name: "Math"}, {ID: "2", Name: "Physics"}}
	if err := Save(p, KeySubjects, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, KeySubjects)); err != nil {
		t.Fatalf("expected value stored as a flat file: %v", err)
	}
	got := Load(context.Background(), p, KeySubjects, []record(nil))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestKeysAndErase(t *testing.T) {
	p, _ := openTemp(t)
	ctx := context.Background()
	for _, key := range []string{KeyTasks, KeySubjects} {
		if err := Save(p, key, []record{}); err != nil {
			t.Fatalf("save %s: %v", key, err)
		}
	}
	if got := p.Keys(ctx); !reflect.DeepEqual(got, []string{KeySubjects, KeyTasks}) {
		t.Fatalf("unexpected keys %v", got)
	}
	if err := p.Erase(KeyTasks); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase(KeyTasks); err != nil {
		t.Fatalf("erasing a missing key should be a no-op: %v", err)
	}
	if got := p.Keys(ctx); !reflect.DeepEqual(got, []string{KeySubjects}) {
		t.Fatalf("unexpected keys after erase %v", got)
	}
}

func TestLoadOneBadRecordFallsBackWhole(t *testing.T) {
	p, base := openTemp(t)
	type task struct {
		ID   string `json:"id"`
		Done bool   `json:"done"`
	}
	content := `[{"id":"a","done":true},{"id":"b","done":"yes"}]`
	if err := os.WriteFile(filepath.Join(base, KeyTasks), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Load(context.Background(), p, KeyTasks, []task{}); got == nil || len(got) != 0 {
		t.Fatalf("expected the whole collection to fall back, got %#v", got)
	}
}
