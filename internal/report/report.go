// Package report prints run summaries to the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"record2ddl/internal/schema"
	"record2ddl/internal/source"
)

// Status selects the banner style of a console line.
type Status string

const (
	Success Status = "SUCCESS"
	Failure Status = "FAILURE"
	Warning Status = "WARNING"
	Note    Status = "NOTE"
)

var (
	white = lipgloss.Color("#ffffff")
	black = lipgloss.Color("#000000")

	styles = map[Status]lipgloss.Style{
		Success: lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#2e7d32")),
		Failure: lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#c62828")),
		Warning: lipgloss.NewStyle().Foreground(black).Background(lipgloss.Color("#FFC107")),
		Note:    lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#1565c0")),
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	recordStyle = lipgloss.NewStyle().Bold(true)
)

// Titles are the human-readable headings of each error kind.
var Titles = map[schema.ErrorKind]string{
	schema.MissingType:       "Missing default type",
	schema.TypeInconsistency: "Default type differs from declared type",
	schema.DuplicateField:    "Record field defined more than once",
}

// Line renders msg in the banner style of status.
func Line(status Status, msg string) string {
	st, ok := styles[status]
	if !ok {
		return msg
	}
	return st.Render(msg)
}

// Print writes one styled line.
func Print(w io.Writer, status Status, msg string) {
	fmt.Fprintln(w, Line(status, msg))
}

// PrintErrors writes the grouped error summary: kind, then record, then
// fields. Nothing is printed for an empty report.
func PrintErrors(w io.Writer, r *schema.Report) {
	if r == nil || r.Empty() {
		return
	}
	Print(w, Warning, fmt.Sprintf("%d problem(s) found while compiling records", r.Len()))
	for _, kind := range schema.Kinds {
		records := r.Records(kind)
		if len(records) == 0 {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s [%s]\n", headerStyle.Render(Titles[kind]), kind)
		for _, rec := range records {
			fmt.Fprintf(w, "  %s: %s\n", recordStyle.Render(rec), strings.Join(r.Fields(kind, rec), ", "))
		}
	}
}

// PrintUnterminated notes record statements dropped at end of input.
func PrintUnterminated(w io.Writer, pending []source.Pending) {
	for _, p := range pending {
		Print(w, Note, fmt.Sprintf("line %d: record statement never closed, dropped: %s", p.Line, truncate(p.Text, 60)))
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return s
}
