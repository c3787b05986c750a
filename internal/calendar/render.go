package calendar

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// NoAssignments is the marker rendered for a day without any assignments.
const NoAssignments = "No assignments"

const weekTitleLayout = "January 02, 2006"

// Renderer turns a week bucket into displayable text. The grouping is
// identical for every renderer; only the presentation differs.
type Renderer interface {
	RenderWeek(bucket WeekBucket) string
}

// Detect picks the rich renderer when stdout is a terminal and the plain
// one otherwise. Selected once at startup, not per call site.
func Detect() Renderer {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return newRichRenderer()
	}
	return &plainRenderer{}
}

type richRenderer struct {
	title      lipgloss.Style
	day        lipgloss.Style
	assignment lipgloss.Style
	empty      lipgloss.Style
	box        lipgloss.Style
}

func newRichRenderer() *richRenderer {
	return &richRenderer{
		title:      lipgloss.NewStyle().Bold(true),
		day:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(12),
		assignment: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		empty:      lipgloss.NewStyle().Faint(true),
		box:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (r *richRenderer) RenderWeek(bucket WeekBucket) string {
	rows := make([]string, 0, len(bucket.Days)+1)
	rows = append(rows, r.title.Render("Week of "+bucket.WeekStart.Format(weekTitleLayout)))

	for _, day := range bucket.Days {
		text := r.empty.Render(NoAssignments)
		if len(day.Assignments) > 0 {
			lines := make([]string, 0, len(day.Assignments))
			for _, a := range day.Assignments {
				lines = append(lines, fmt.Sprintf("%s (%s)", a.Name, a.Course))
			}
			text = r.assignment.Render(strings.Join(lines, "\n"))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, r.day.Render(day.Name), text))
	}

	return r.box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

type plainRenderer struct{}

func (r *plainRenderer) RenderWeek(bucket WeekBucket) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Week of %s\n", bucket.WeekStart.Format(weekTitleLayout))
	sb.WriteString(strings.Repeat("-", 50))
	sb.WriteString("\n")

	for _, day := range bucket.Days {
		fmt.Fprintf(&sb, "\n%s:\n", day.Name)
		if len(day.Assignments) == 0 {
			fmt.Fprintf(&sb, "  %s\n", NoAssignments)
			continue
		}
		for _, a := range day.Assignments {
			fmt.Fprintf(&sb, "  - %s (%s)\n", a.Name, a.Course)
		}
	}

	return sb.String()
}
