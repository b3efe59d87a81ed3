package printers

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"tableflip.dev/planner/pkg/query"
)

// ChartWidth is the length in cells of the longest bar.
const ChartWidth = 40

// Bar colors.
const (
	colorDone    = "#2563eb"
	colorPending = "#f97316"
	colorSubject = "#14b8a6"
)

// labelWidth is how many cells of a subject name the chart shows.
const labelWidth = 8

// BarLength scales count against top into at most width cells. A zero top
// is treated as one.
func BarLength(count, top, width int) int {
	if top < 1 {
		top = 1
	}
	if count <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(top) * float64(width)))
}

// ShortLabel clips a name to eight cells followed by an ellipsis.
func ShortLabel(name string) string {
	if ansi.PrintableRuneWidth(name) <= labelWidth {
		return name
	}
	return truncate.String(name, labelWidth) + "…"
}

// DoneChart prints the done versus pending bars.
func (pp *PrettyPrint) DoneChart(t query.Tally) {
	pp.Title("Tasks")
	top := t.Max()
	rows := []struct {
		label string
		count int
		hex   string
	}{
		{fmt.Sprintf("Done (%d)", t.Done), t.Done, colorDone},
		{fmt.Sprintf("Pending (%d)", t.Pending), t.Pending, colorPending},
	}
	width := 0
	for _, r := range rows {
		width = max(width, len(r.label))
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(pp.out(), "%-*s  %s\n", width, r.label, pp.bar(BarLength(r.count, top, ChartWidth), r.hex))
	}
	pp.NewLine()
}

// SubjectChart prints one bar per subject.
func (pp *PrettyPrint) SubjectChart(counts []query.SubjectCount) {
	pp.Title("Tasks per subject")
	if len(counts) == 0 {
		pp.Placeholder("No subjects yet.")
		return
	}
	top := query.MaxCount(counts)
	for _, c := range counts {
		label := ShortLabel(c.Subject.Name)
		pad := labelWidth + 1 - ansi.PrintableRuneWidth(label)
		if pad < 0 {
			pad = 0
		}
		_, _ = fmt.Fprintf(pp.out(), "%s%s  %s %d\n", label, strings.Repeat(" ", pad), pp.bar(BarLength(c.Count, top, ChartWidth), colorSubject), c.Count)
	}
	pp.NewLine()
}

func (pp *PrettyPrint) bar(n int, hex string) string {
	if pp.Plain {
		return strings.Repeat("#", n)
	}
	s := strings.Repeat("█", n)
	profile := termenv.EnvColorProfile()
	if profile == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(profile.Color(pp.tint(hex))).String()
}

// tint lightens bar colors on dark backgrounds.
func (pp *PrettyPrint) tint(hex string) string {
	if !pp.Dark {
		return hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.3).Clamped().Hex()
}
