package query

import (
	"testing"
	"time"

	"tableflip.dev/planner/pkg/model"
)

func TestScheduleGroupsAndSorts(t *testing.T) {
	subjects := []model.Subject{{ID: "math", Name: "Math"}}
	sessions := []model.Session{
		session("late", model.Mon, "14:00", "15:00"),
		session("early", model.Mon, "08:00", "09:00"),
		{ID: "orphan", SubjectID: "deleted", Day: model.Sun, Start: "10:00", End: "11:30"},
	}
	week := Schedule(subjects, sessions)
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[0].Day != model.Mon || week[6].Day != model.Sun {
		t.Fatalf("expected Mon..Sun order, got %s..%s", week[0].Day, week[6].Day)
	}
	mon := week[0].Sessions
	if len(mon) != 2 || mon[0].ID != "early" || mon[1].ID != "late" {
		t.Fatalf("unexpected Monday order %+v", mon)
	}
	if mon[0].SubjectName != "Math" {
		t.Fatalf("expected resolved subject name, got %q", mon[0].SubjectName)
	}
	sun := week[6].Sessions
	if len(sun) != 1 || sun[0].SubjectName != model.UnknownSubject {
		t.Fatalf("expected dangling subject fallback, got %+v", sun)
	}
	if got := week[6].Total(); got != 90*time.Minute {
		t.Fatalf("expected 90m on Sunday, got %v", got)
	}
	if len(week[2].Sessions) != 0 {
		t.Fatalf("expected empty Wednesday")
	}
}
