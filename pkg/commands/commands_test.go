package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/query"
)

func init() {
	color.NoColor = true
}

func setupStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PLANNER_PATH", filepath.Join(dir, "db"))
	t.Setenv("PLANNER_CONFIG_PATH", dir)
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := New()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("planner %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestSubjectTaskSessionFlow(t *testing.T) {
	setupStore(t)

	out := mustRun(t, "subject", "add", "Math", "--priority", "high")
	if !strings.Contains(out, "Math") || !strings.Contains(out, "Priority: high") {
		t.Fatalf("unexpected subject add output:\n%s", out)
	}

	var subjects []model.Subject
	if err := json.Unmarshal([]byte(mustRun(t, "subject", "list", "--json")), &subjects); err != nil {
		t.Fatalf("decode subjects: %v", err)
	}
	if len(subjects) != 1 || subjects[0].Name != "Math" {
		t.Fatalf("unexpected subjects %+v", subjects)
	}

	mustRun(t, "task", "add", "Problem", "set", "--subject", "math", "--deadline", "2030-01-10")
	var tasks []query.LabeledTask
	if err := json.Unmarshal([]byte(mustRun(t, "task", "list", "--json")), &tasks); err != nil {
		t.Fatalf("decode tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Problem set" || tasks[0].SubjectName != "Math" || tasks[0].SubjectID != subjects[0].ID {
		t.Fatalf("unexpected tasks %+v", tasks)
	}

	out = mustRun(t, "task", "done", tasks[0].ID.String())
	if !strings.Contains(out, "[x] Problem set") {
		t.Fatalf("expected task marked done:\n%s", out)
	}
	out = mustRun(t, "task", "undo", tasks[0].ID.String())
	if !strings.Contains(out, "[ ] Problem set") {
		t.Fatalf("expected task pending again:\n%s", out)
	}

	out = mustRun(t, "session", "add", "--subject", "Math", "--day", "monday", "--start", "9:00", "--end", "10:00")
	if !strings.Contains(out, "09:00 - 10:00  Math") {
		t.Fatalf("expected session in schedule:\n%s", out)
	}

	_, err := run(t, "session", "add", "--subject", "Math", "--day", "Mon", "--start", "09:30", "--end", "11:00")
	if !errors.Is(err, planner.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	out, err = run(t, "session", "add", "--subject", "Math", "--day", "Mon", "--start", "09:30", "--end", "11:00", "--json")
	if err != nil {
		t.Fatalf("expected JSON mode to swallow the error, got %v", err)
	}
	if !strings.Contains(out, `{"error":"planner: conflict`) {
		t.Fatalf("expected JSON error, got %q", out)
	}

	mustRun(t, "session", "add", "--subject", "Math", "--day", "Mon", "--start", "10:00", "--end", "11:00")
	out = mustRun(t, "schedule")
	if !strings.Contains(out, "10:00 - 11:00  Math") || !strings.Contains(out, "2h") {
		t.Fatalf("expected touching session and day total:\n%s", out)
	}
}

func TestUnknownSubjectIsRejected(t *testing.T) {
	setupStore(t)
	_, err := run(t, "task", "add", "Essay", "--subject", "Art")
	if !errors.Is(err, planner.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExportResetImport(t *testing.T) {
	dir := setupStore(t)
	mustRun(t, "subject", "add", "History")
	mustRun(t, "task", "add", "Essay")

	file := filepath.Join(dir, "backup.json")
	mustRun(t, "export", file)

	var doc planner.Document
	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(doc.Subjects) != 1 || len(doc.Tasks) != 1 {
		t.Fatalf("unexpected export %+v", doc)
	}

	if _, err := run(t, "reset"); err == nil {
		t.Fatalf("expected reset without --yes to fail")
	}
	mustRun(t, "reset", "--yes")
	if out := mustRun(t, "subject", "list"); !strings.Contains(out, "No subjects yet") {
		t.Fatalf("expected empty subjects after reset:\n%s", out)
	}

	mustRun(t, "import", file)
	if out := mustRun(t, "subject", "list"); !strings.Contains(out, "History") {
		t.Fatalf("expected History after import:\n%s", out)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"subjects":[]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := run(t, "import", bad); !errors.Is(err, planner.ErrInvalidImport) {
		t.Fatalf("expected ErrInvalidImport, got %v", err)
	}
	if out := mustRun(t, "subject", "list"); !strings.Contains(out, "History") {
		t.Fatalf("rejected import must not change data:\n%s", out)
	}
}

func TestExportToStdout(t *testing.T) {
	setupStore(t)
	mustRun(t, "theme", "dark")
	out := mustRun(t, "export", "-")
	if !strings.Contains(out, "\n  \"settings\": {\n    \"dark\": true\n  }") {
		t.Fatalf("expected indented dark settings, got:\n%s", out)
	}
}

func TestDashboardAndChart(t *testing.T) {
	setupStore(t)
	mustRun(t, "subject", "add", "Math")
	mustRun(t, "task", "add", "Essay", "--subject", "Math", "--deadline", "2030-05-01")

	out := mustRun(t, "dashboard")
	if !strings.Contains(out, "1  subjects") || !strings.Contains(out, "Essay 2030-05-01 • Math") {
		t.Fatalf("unexpected dashboard:\n%s", out)
	}

	var sum query.Summary
	if err := json.Unmarshal([]byte(mustRun(t, "dashboard", "--json")), &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.PendingTasks != 1 || len(sum.Upcoming) != 1 {
		t.Fatalf("unexpected summary %+v", sum)
	}

	out = mustRun(t, "chart")
	if !strings.Contains(out, "Pending (1)") || !strings.Contains(out, "Math") {
		t.Fatalf("unexpected chart:\n%s", out)
	}
}

func TestInfoShowsPath(t *testing.T) {
	dir := setupStore(t)
	out := mustRun(t, "info")
	if !strings.Contains(out, filepath.Join(dir, "db")) {
		t.Fatalf("expected store path in info:\n%s", out)
	}
}
