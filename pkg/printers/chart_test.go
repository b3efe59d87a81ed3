package printers

import (
	"bytes"
	"strings"
	"testing"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/query"
)

func TestBarLength(t *testing.T) {
	tests := []struct {
		count, top, width, want int
	}{
		{count: 0, top: 0, width: 40, want: 0},
		{count: 1, top: 2, width: 40, want: 20},
		{count: 2, top: 2, width: 40, want: 40},
		{count: 1, top: 3, width: 40, want: 13},
		{count: 3, top: 0, width: 10, want: 30},
	}
	for _, tt := range tests {
		if got := BarLength(tt.count, tt.top, tt.width); got != tt.want {
			t.Fatalf("BarLength(%d, %d, %d) = %d, want %d", tt.count, tt.top, tt.width, got, tt.want)
		}
	}
}

func TestShortLabel(t *testing.T) {
	if got := ShortLabel("Math"); got != "Math" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := ShortLabel("12345678"); got != "12345678" {
		t.Fatalf("eight cells should fit, got %q", got)
	}
	if got := ShortLabel("Mathematics"); got != "Mathemat…" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestDoneChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).DoneChart(query.Tally{})
	out := buf.String()
	if !strings.Contains(out, "Done (0)") || !strings.Contains(out, "Pending (0)") {
		t.Fatalf("unexpected chart %q", out)
	}
	if strings.Contains(out, "#") {
		t.Fatalf("empty tally must not draw bars, got %q", out)
	}
}

func TestDoneChartScales(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).DoneChart(query.Tally{Done: 1, Pending: 2})
	lines := strings.Split(buf.String(), "\n")
	if strings.Count(lines[1], "#") != ChartWidth/2 || strings.Count(lines[2], "#") != ChartWidth {
		t.Fatalf("unexpected bars %q", buf.String())
	}
}

func TestSubjectChart(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf, false)
	pp.SubjectChart(nil)
	if !strings.Contains(buf.String(), "No subjects yet.") {
		t.Fatalf("expected placeholder, got %q", buf.String())
	}
	buf.Reset()
	pp.SubjectChart([]query.SubjectCount{
		{Subject: model.Subject{Name: "Mathematics"}, Count: 4},
		{Subject: model.Subject{Name: "Art"}, Count: 0},
	})
	out := buf.String()
	if !strings.Contains(out, "Mathemat…") || !strings.Contains(out, strings.Repeat("#", ChartWidth)+" 4") {
		t.Fatalf("unexpected subject chart %q", out)
	}
	if !strings.Contains(out, "Art"+strings.Repeat(" ", 9)+"0\n") {
		t.Fatalf("expected zero bucket row, got %q", out)
	}
}

func TestTintDark(t *testing.T) {
	pp := &PrettyPrint{Dark: true}
	if got := pp.tint(colorDone); got == colorDone {
		t.Fatalf("expected lighter color on dark theme")
	}
	pp.Dark = false
	if got := pp.tint(colorDone); got != colorDone {
		t.Fatalf("expected unchanged color on light theme")
	}
}
