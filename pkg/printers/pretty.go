// Package printers renders planner views for the terminal.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/query"
)

// PrettyPrint writes human readable views to Out.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Dark selects the palette tuned for dark terminals.
	Dark bool
	// Plain disables block glyphs and true-color bars, for pipes and files.
	Plain bool
}

// New returns a printer for w. Output that is not a terminal is plain.
func New(w io.Writer, dark bool) *PrettyPrint {
	if w == nil {
		w = color.Output
	}
	return &PrettyPrint{Out: w, Dark: dark, Plain: !isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	if w == color.Output {
		return !color.NoColor
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var (
	spacing = strings.Repeat(" ", len("xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) titleColor() *color.Color {
	if pp.Dark {
		return color.New(color.Bold, color.Underline, color.FgHiWhite)
	}
	return color.New(color.Bold, color.Underline)
}

func (pp *PrettyPrint) Title(title string) {
	t := pp.titleColor()

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := pp.titleColor()
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintf(pp.out(), " %s\n", noun)
	default:
		_, _ = c.Fprintf(pp.out(), " %ss\n", noun)
	}
}

// Placeholder prints muted text shown in place of an empty list.
func (pp *PrettyPrint) Placeholder(text string) {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprintf(pp.out(), " %s\n\n", text)
}

func (pp *PrettyPrint) id(id model.ID) string {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	s := id.String()
	pad := len(spacing) - len(s)
	if pad < 1 {
		pad = 1
	}
	return y.Sprint(s) + strings.Repeat(" ", pad)
}

// Dashboard prints the summary counts and the upcoming deadlines.
func (pp *PrettyPrint) Dashboard(sum query.Summary, subjects []model.Subject) {
	bold := color.New(color.Bold)

	pp.Title("Dashboard")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(sum.TotalSubjects), "subjects")
	tbl.AddRow(bold.Sprint(sum.PendingTasks), "pending tasks")
	tbl.AddRow(bold.Sprint(sum.TodaySessions), fmt.Sprintf("sessions today (%s)", sum.Today))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.Title("Upcoming deadlines")
	if len(sum.Upcoming) == 0 {
		pp.Placeholder("No upcoming deadlines")
		return
	}
	meta := color.New(color.Faint)
	for _, t := range sum.Upcoming {
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), pp.id(t.ID))
		}
		name := model.SubjectName(subjects, t.SubjectID, model.NoSubject)
		_, _ = fmt.Fprintf(pp.out(), "%s %s\n", bold.Sprint(t.Title), meta.Sprintf("%s • %s", t.Deadline, name))
	}
	pp.NewLine()
}

// Subjects prints the subject list with priorities.
func (pp *PrettyPrint) Subjects(subjects []model.Subject) {
	pp.TitleWithCount("Subjects", len(subjects), "subject")
	if len(subjects) == 0 {
		pp.Placeholder("No subjects yet")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range subjects {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, pp.id(s.ID))
		}
		row = append(row, color.New(color.Bold).Sprint(s.Name), priorityColor(s.Priority).Sprintf("Priority: %s", s.Priority))
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func priorityColor(p model.Priority) *color.Color {
	switch p {
	case model.PriorityHigh:
		return color.New(color.FgRed)
	case model.PriorityLow:
		return color.New(color.Faint)
	default:
		return color.New(color.FgYellow)
	}
}

// Tasks prints tasks with their done state, deadline and subject.
func (pp *PrettyPrint) Tasks(tasks []query.LabeledTask) {
	pp.TitleWithCount("Tasks", len(tasks), "task")
	if len(tasks) == 0 {
		pp.Placeholder("No tasks yet")
		return
	}

	done := color.New(color.Faint, color.CrossedOut)
	meta := color.New(color.Faint)
	for _, t := range tasks {
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), pp.id(t.ID))
		}
		box, title := "[ ]", t.Title
		if t.Done {
			box, title = "[x]", done.Sprint(t.Title)
		}
		_, _ = fmt.Fprintf(pp.out(), "%s %s %s\n", box, title, meta.Sprintf("%s • %s", t.Deadline, t.SubjectName))
	}
	pp.NewLine()
}
