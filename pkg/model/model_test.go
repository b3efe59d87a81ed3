package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIDUnmarshalAcceptsNumbers(t *testing.T) {
	var task Task
	if err := json.Unmarshal([]byte(`{"id":1704067200123,"title":"x","subjectId":42}`), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.ID != "1704067200123" {
		t.Fatalf("expected numeric id to normalize, got %q", task.ID)
	}
	if task.SubjectID != ID("42") {
		t.Fatalf("expected subject id 42, got %q", task.SubjectID)
	}
}

func TestIDUnmarshalNormalizesNumberSpelling(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`1e3`, "1000"},
		{`1000.0`, "1000"},
		{`1.50`, "1.5"},
		{`-2E2`, "-200"},
		{`1000`, "1000"},
	}
	for _, tt := range tests {
		var id ID
		if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if id != ID(tt.want) {
			t.Fatalf("id %s: got %q, want %q", tt.in, id, tt.want)
		}
	}
}

func TestIDUnmarshalNullAndString(t *testing.T) {
	var s Session
	if err := json.Unmarshal([]byte(`{"id":"abc","subjectId":null}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.ID != "abc" || s.SubjectID != "" {
		t.Fatalf("unexpected ids %+v", s)
	}
	var bad ID
	if err := json.Unmarshal([]byte(`{}`), &bad); err == nil {
		t.Fatalf("expected object id to be rejected")
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    Weekday
		wantErr bool
	}{
		{in: "Mon", want: Mon},
		{in: "tuesday", want: Tue},
		{in: " SUN ", want: Sun},
		{in: "Th", wantErr: true},
		{in: "Funday", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseWeekday(%q) expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseWeekday(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2024-01-08 was a Monday.
	day := time.Date(2024, time.January, 8, 12, 0, 0, 0, time.UTC)
	if got := WeekdayOf(day); got != Mon {
		t.Fatalf("expected Mon, got %s", got)
	}
	if got := WeekdayOf(day.AddDate(0, 0, 6)); got != Sun {
		t.Fatalf("expected Sun, got %s", got)
	}
}

func TestSubjectNameFallback(t *testing.T) {
	subjects := []Subject{{ID: "1", Name: "Math"}}
	if got := SubjectName(subjects, "1", NoSubject); got != "Math" {
		t.Fatalf("expected Math, got %q", got)
	}
	if got := SubjectName(subjects, "gone", NoSubject); got != NoSubject {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate(""); ok {
		t.Fatalf("empty date should not parse")
	}
	if _, ok := ParseDate("2024-13-01"); ok {
		t.Fatalf("invalid month should not parse")
	}
	d, ok := ParseDate("2024-01-10")
	if !ok || FormatDate(d) != "2024-01-10" {
		t.Fatalf("unexpected parse %v %v", d, ok)
	}
}

func TestLookupSubject(t *testing.T) {
	subjects := []Subject{{ID: "a1", Name: "Math"}, {ID: "b2", Name: "History"}}
	if s, ok := LookupSubject(subjects, "b2"); !ok || s.Name != "History" {
		t.Fatalf("expected lookup by id, got %+v %v", s, ok)
	}
	if s, ok := LookupSubject(subjects, " math "); !ok || s.ID != "a1" {
		t.Fatalf("expected lookup by name, got %+v %v", s, ok)
	}
	if _, ok := LookupSubject(subjects, "Art"); ok {
		t.Fatalf("expected no match for Art")
	}
}
