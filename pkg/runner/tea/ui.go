// Package teaui is the Bubble Tea front end: one tab per planner view.
package teaui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/store"
)

type tab int

const (
	tabDashboard tab = iota
	tabSubjects
	tabSchedule
	tabTasks
	tabAnalytics
	tabSettings
)

var tabNames = []string{"Dashboard", "Subjects", "Schedule", "Tasks", "Analytics", "Settings"}

func (t tab) String() string { return tabNames[t] }

// messages
type storeChangedMsg struct{ key string }
type watchClosedMsg struct{}

// Model contains UI state
type Model struct {
	planner *planner.Planner
	ctx     context.Context
	events  <-chan store.Event

	tab    tab
	cursor int
	tasks  []query.LabeledTask

	adding bool
	input  textinput.Model

	status string

	termWidth  int
	termHeight int
}

// New creates the UI model. events may be nil when nothing watches the store.
func New(ctx context.Context, p *planner.Planner, events <-chan store.Event) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if p == nil {
		p = planner.Open(ctx, nil)
	}

	ti := textinput.New()
	ti.Placeholder = "Task title @YYYY-MM-DD"
	ti.CharLimit = 256
	ti.Prompt = "Add: "

	m := Model{
		planner: p,
		ctx:     ctx,
		events:  events,
		input:   ti,
		status:  "tab/shift+tab switch views, t theme, q quit",
	}
	m.refreshTasks()
	return m
}

// Init starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg{key: ev.Key}
	}
}

func (m *Model) refreshTasks() {
	m.tasks = m.planner.SortedTasks(m.ctx)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case storeChangedMsg:
		m.planner.Reload(m.ctx)
		m.refreshTasks()
		m.status = "Reloaded " + msg.key
		cmds = append(cmds, m.waitForChange())
	case watchClosedMsg:
		m.events = nil
	case tea.KeyPressMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tab(len(tabNames))
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
		case "1", "2", "3", "4", "5", "6":
			m.tab = tab(msg.String()[0] - '1')
		case "t":
			m.toggleTheme()
		default:
			if m.tab == tabTasks {
				cmds = append(cmds, m.updateTasks(msg))
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateTasks(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "space", " ", "x", "enter":
		if t, ok := m.currentTask(); ok {
			if _, err := m.planner.SetTaskDone(m.ctx, t.ID, !t.Done); err != nil {
				m.status = "ERR: " + err.Error()
				return nil
			}
			m.refreshTasks()
		}
	case "d":
		if t, ok := m.currentTask(); ok {
			if err := m.planner.RemoveTask(m.ctx, t.ID); err != nil {
				m.status = "ERR: " + err.Error()
				return nil
			}
			m.status = "Removed " + t.Title
			m.refreshTasks()
		}
	case "a", "o":
		m.adding = true
		m.input.Reset()
		return m.input.Focus()
	}
	return nil
}

func (m Model) updateAdding(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil
	case "enter":
		title, deadline := splitDeadline(m.input.Value())
		if _, err := m.planner.AddTask(m.ctx, title, "", deadline); err != nil {
			m.status = "ERR: " + err.Error()
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		m.status = "Added " + title
		m.refreshTasks()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// splitDeadline peels a trailing "@YYYY-MM-DD" token off a quick-add line.
func splitDeadline(line string) (string, string) {
	fields := strings.Fields(line)
	if n := len(fields); n > 1 && strings.HasPrefix(fields[n-1], "@") {
		return strings.Join(fields[:n-1], " "), strings.TrimPrefix(fields[n-1], "@")
	}
	return strings.TrimSpace(line), ""
}

func (m *Model) currentTask() (query.LabeledTask, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return query.LabeledTask{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) toggleTheme() {
	dark := !m.planner.Settings().Dark
	m.planner.SetDark(m.ctx, dark)
	if dark {
		m.status = "Dark theme"
	} else {
		m.status = "Light theme"
	}
}

func (m Model) accent() lipgloss.Style {
	if m.planner.Settings().Dark {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25"))
}

// View renders the tab bar, the active view and the status line.
func (m Model) View() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := m.accent().Underline(true)

	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if tab(i) == m.tab {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, muted.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	body := m.renderTab()
	if m.adding {
		body += "\n" + m.input.View()
	}

	status := muted.Render(m.status)
	return m.clip(header + "\n\n" + body + "\n" + status)
}

func (m Model) renderTab() string {
	var buf bytes.Buffer
	pp := printers.New(&buf, m.planner.Settings().Dark)

	switch m.tab {
	case tabDashboard:
		pp.Dashboard(m.planner.Summary(), m.planner.Subjects())
	case tabSubjects:
		pp.Subjects(m.planner.Subjects())
	case tabSchedule:
		pp.Schedule(m.planner.Schedule(), model.WeekdayOf(m.planner.Now()))
	case tabTasks:
		return m.renderTasks()
	case tabAnalytics:
		pp.DoneChart(m.planner.DoneTally())
		pp.SubjectChart(m.planner.SubjectTally())
	case tabSettings:
		return m.renderSettings()
	}
	return buf.String()
}

func (m Model) renderTasks() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	done := muted.Strikethrough(true)
	selected := m.accent()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tasks - %d\n", len(m.tasks)))
	if len(m.tasks) == 0 {
		b.WriteString(muted.Render(" No tasks yet. Press a to add one.") + "\n")
		return b.String()
	}
	for i, t := range m.tasks {
		marker, box, title := "  ", "[ ]", t.Title
		if t.Done {
			box, title = "[x]", done.Render(t.Title)
		}
		if i == m.cursor {
			marker = selected.Render("→ ")
		}
		meta := t.SubjectName
		if t.Deadline != "" {
			meta = t.Deadline + " • " + meta
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, box, title, muted.Render(meta)))
	}
	b.WriteString("\n" + muted.Render("j/k move, space toggle, a add, d delete") + "\n")
	return b.String()
}

func (m Model) renderSettings() string {
	theme := "light"
	if m.planner.Settings().Dark {
		theme = "dark"
	}
	panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	return panel.Render(fmt.Sprintf("Theme: %s\nPress t to toggle.", theme)) + "\n"
}

// clip truncates each line to the terminal width once it is known.
func (m Model) clip(s string) string {
	if m.termWidth <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = truncate.String(l, uint(m.termWidth))
	}
	return strings.Join(lines, "\n")
}
