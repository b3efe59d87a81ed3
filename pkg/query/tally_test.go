package query

import (
	"testing"

	"tableflip.dev/planner/pkg/model"
)

func TestDoneTally(t *testing.T) {
	got := DoneTally([]model.Task{{Done: true}, {}, {}})
	if got.Done != 1 || got.Pending != 2 || got.Max() != 2 {
		t.Fatalf("unexpected tally %+v", got)
	}
	if empty := DoneTally(nil); empty.Max() != 1 {
		t.Fatalf("expected max of 1 for empty tally, got %d", empty.Max())
	}
}

func TestSubjectTallyIncludesZeroBuckets(t *testing.T) {
	subjects := []model.Subject{{ID: "m", Name: "Math"}, {ID: "p", Name: "Physics"}}
	tasks := []model.Task{{SubjectID: "m"}, {SubjectID: "m"}, {SubjectID: "gone"}}
	got := SubjectTally(subjects, tasks)
	if len(got) != 2 {
		t.Fatalf("expected one bucket per subject, got %d", len(got))
	}
	if got[0].Subject.Name != "Math" || got[0].Count != 2 {
		t.Fatalf("unexpected Math bucket %+v", got[0])
	}
	if got[1].Subject.Name != "Physics" || got[1].Count != 0 {
		t.Fatalf("unexpected Physics bucket %+v", got[1])
	}
	if MaxCount(got) != 2 {
		t.Fatalf("expected max 2")
	}
	if MaxCount(SubjectTally(subjects, nil)) != 1 {
		t.Fatalf("expected max of 1 for all-zero buckets")
	}
}
