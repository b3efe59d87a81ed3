// Package planner owns the planner's collections. Each mutation validates its
// input, updates the in-memory state and writes the affected collection back
// to the store.
package planner

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"pkt.systems/pslog"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/timeutil"
)

// Planner holds subjects, tasks, sessions and settings mirrored from a store.
// It is not safe for concurrent use.
type Planner struct {
	store store.Persistence
	log   pslog.Logger
	now   func() time.Time

	subjects []model.Subject
	tasks    []model.Task
	sessions []model.Session
	settings model.Settings
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l pslog.Logger) Option {
	return func(p *Planner) { p.log = l }
}

// WithClock overrides the source of "now" used by the dashboard.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// Open loads the planner state from p. A nil store keeps everything in
// memory.
func Open(ctx context.Context, p store.Persistence, opts ...Option) *Planner {
	pl := &Planner{store: p}
	for _, opt := range opts {
		opt(pl)
	}
	if pl.log == nil {
		pl.log = pslog.Ctx(ctx)
	}
	if pl.now == nil {
		pl.now = time.Now
	}
	pl.setDefaults()
	pl.Reload(ctx)
	return pl
}

// Reload replaces the in-memory state with what the store holds. A memory
// only planner keeps its state.
func (p *Planner) Reload(ctx context.Context) {
	if p.store == nil {
		return
	}
	p.subjects = store.Load(ctx, p.store, store.KeySubjects, []model.Subject{})
	p.tasks = store.Load(ctx, p.store, store.KeyTasks, []model.Task{})
	p.sessions = store.Load(ctx, p.store, store.KeySessions, []model.Session{})
	p.settings = store.Load(ctx, p.store, store.KeySettings, model.Settings{})
}

func (p *Planner) setDefaults() {
	p.subjects = []model.Subject{}
	p.tasks = []model.Task{}
	p.sessions = []model.Session{}
	p.settings = model.Settings{}
}

// Subjects returns a copy of the subjects, newest first.
func (p *Planner) Subjects() []model.Subject { return slices.Clone(p.subjects) }

// Tasks returns a copy of the tasks in their stored order.
func (p *Planner) Tasks() []model.Task { return slices.Clone(p.tasks) }

// Sessions returns a copy of the sessions in insertion order.
func (p *Planner) Sessions() []model.Session { return slices.Clone(p.sessions) }

// Settings returns the current settings.
func (p *Planner) Settings() model.Settings { return p.settings }

// Now returns the planner's current time.
func (p *Planner) Now() time.Time { return p.now() }

// Summary computes the dashboard for the current time.
func (p *Planner) Summary() query.Summary {
	return query.Dashboard(p.subjects, p.tasks, p.sessions, p.now())
}

// Schedule groups the sessions by weekday.
func (p *Planner) Schedule() []query.DaySchedule {
	return query.Schedule(p.subjects, p.sessions)
}

// SortedTasks sorts the canonical task collection, persists the new order
// and returns the tasks with their subjects resolved.
func (p *Planner) SortedTasks(ctx context.Context) []query.LabeledTask {
	before := slices.Clone(p.tasks)
	query.SortTasks(p.tasks)
	if !slices.Equal(before, p.tasks) {
		p.persist(store.KeyTasks, p.tasks)
	}
	return query.LabelTasks(p.subjects, p.tasks)
}

// DoneTally counts done and pending tasks.
func (p *Planner) DoneTally() query.Tally {
	return query.DoneTally(p.tasks)
}

// SubjectTally counts tasks per subject.
func (p *Planner) SubjectTally() []query.SubjectCount {
	return query.SubjectTally(p.subjects, p.tasks)
}

// AddSubject creates a subject at the top of the list. An empty priority
// defaults to medium.
func (p *Planner) AddSubject(ctx context.Context, name string, priority model.Priority) (model.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Subject{}, fmt.Errorf("%w: subject name is required", ErrInvalid)
	}
	priority = model.Priority(strings.TrimSpace(string(priority)))
	if priority == "" {
		priority = model.PriorityMedium
	}
	s := model.Subject{ID: model.NewID(), Name: name, Priority: priority}
	p.subjects = append([]model.Subject{s}, p.subjects...)
	p.log.Debug("subject added", "id", s.ID, "name", s.Name)
	p.persist(store.KeySubjects, p.subjects)
	return s, nil
}

// EditSubject renames a subject and, when priority is non-empty, changes its
// priority.
func (p *Planner) EditSubject(ctx context.Context, id model.ID, name string, priority model.Priority) (model.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Subject{}, fmt.Errorf("%w: subject name is required", ErrInvalid)
	}
	i := slices.IndexFunc(p.subjects, func(s model.Subject) bool { return s.ID == id })
	if i < 0 {
		return model.Subject{}, fmt.Errorf("%w: subject %s", ErrNotFound, id)
	}
	p.subjects[i].Name = name
	if pr := strings.TrimSpace(string(priority)); pr != "" {
		p.subjects[i].Priority = model.Priority(pr)
	}
	p.persist(store.KeySubjects, p.subjects)
	return p.subjects[i], nil
}

// RemoveSubject deletes a subject. Tasks and sessions that reference it are
// kept and resolve to a fallback name.
func (p *Planner) RemoveSubject(ctx context.Context, id model.ID) error {
	next := slices.DeleteFunc(slices.Clone(p.subjects), func(s model.Subject) bool { return s.ID == id })
	if len(next) == len(p.subjects) {
		return fmt.Errorf("%w: subject %s", ErrNotFound, id)
	}
	p.subjects = next
	p.persist(store.KeySubjects, p.subjects)
	return nil
}

// AddTask creates a pending task at the top of the list. The deadline is
// optional but must be an ISO date when given.
func (p *Planner) AddTask(ctx context.Context, title string, subjectID model.ID, deadline string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: task title is required", ErrInvalid)
	}
	deadline = strings.TrimSpace(deadline)
	if deadline != "" {
		if _, ok := model.ParseDate(deadline); !ok {
			return model.Task{}, fmt.Errorf("%w: deadline %q must be YYYY-MM-DD", ErrInvalid, deadline)
		}
	}
	t := model.Task{ID: model.NewID(), Title: title, SubjectID: subjectID, Deadline: deadline}
	p.tasks = append([]model.Task{t}, p.tasks...)
	p.log.Debug("task added", "id", t.ID, "title", t.Title)
	p.persist(store.KeyTasks, p.tasks)
	return t, nil
}

// SetTaskDone marks a task done or pending.
func (p *Planner) SetTaskDone(ctx context.Context, id model.ID, done bool) (model.Task, error) {
	i := slices.IndexFunc(p.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return model.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	p.tasks[i].Done = done
	p.persist(store.KeyTasks, p.tasks)
	return p.tasks[i], nil
}

// RemoveTask deletes a task.
func (p *Planner) RemoveTask(ctx context.Context, id model.ID) error {
	next := slices.DeleteFunc(slices.Clone(p.tasks), func(t model.Task) bool { return t.ID == id })
	if len(next) == len(p.tasks) {
		return fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	p.tasks = next
	p.persist(store.KeyTasks, p.tasks)
	return nil
}

// AddSession schedules a weekly study block. It is rejected when a field is
// missing, start is not before end, or it overlaps a session on the same day.
func (p *Planner) AddSession(ctx context.Context, subjectID model.ID, day model.Weekday, start, end string) (model.Session, error) {
	if subjectID == "" || strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return model.Session{}, fmt.Errorf("%w: please fill all fields", ErrInvalid)
	}
	if !day.Valid() {
		return model.Session{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalid, day)
	}
	start, err := timeutil.ParseClock(start)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	end, err = timeutil.ParseClock(end)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if start >= end {
		return model.Session{}, fmt.Errorf("%w: start must be before end", ErrInvalid)
	}
	s := model.Session{ID: model.NewID(), SubjectID: subjectID, Day: day, Start: start, End: end}
	if clashes := query.Conflicts(p.sessions, s); len(clashes) > 0 {
		c := clashes[0]
		return model.Session{}, fmt.Errorf("%w: %s %s-%s", ErrConflict, c.Day, c.Start, c.End)
	}
	p.sessions = append(p.sessions, s)
	p.log.Debug("session added", "id", s.ID, "day", s.Day, "start", s.Start, "end", s.End)
	p.persist(store.KeySessions, p.sessions)
	return s, nil
}

// RemoveSession deletes a session.
func (p *Planner) RemoveSession(ctx context.Context, id model.ID) error {
	next := slices.DeleteFunc(slices.Clone(p.sessions), func(s model.Session) bool { return s.ID == id })
	if len(next) == len(p.sessions) {
		return fmt.Errorf("%w: session %s", ErrNotFound, id)
	}
	p.sessions = next
	p.persist(store.KeySessions, p.sessions)
	return nil
}

// SetDark switches the dark theme on or off.
func (p *Planner) SetDark(ctx context.Context, dark bool) {
	p.settings.Dark = dark
	p.persist(store.KeySettings, p.settings)
}

// Reset clears every collection and restores default settings.
func (p *Planner) Reset(ctx context.Context) {
	p.setDefaults()
	p.saveAll()
}

func (p *Planner) saveAll() {
	p.persist(store.KeySubjects, p.subjects)
	p.persist(store.KeyTasks, p.tasks)
	p.persist(store.KeySessions, p.sessions)
	p.persist(store.KeySettings, p.settings)
}

// persist writes one value. Failures are logged and otherwise ignored; the
// in-memory state stays authoritative.
func (p *Planner) persist(key string, v any) {
	if p.store == nil {
		return
	}
	if err := store.Save(p.store, key, v); err != nil {
		p.log.Warn("planner save failed", "key", key, "err", err)
	}
}
