package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/tasklist/internal/query"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

const detailWrap = 72

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	titleStyle  = lipgloss.NewStyle().Bold(true)

	// Same hues as the table markers.
	priorityStyles = map[task.Priority]lipgloss.Style{
		task.Critical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		task.High:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		task.Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		task.Low:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
	dueStyles = map[task.DueTag]lipgloss.Style{
		task.Overdue: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		task.Today:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		task.InTime:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}

	markdownStyle = "auto"
)

// DisableColor strips all styling from summary and detail output. The task
// table is unaffected; it draws markers, not styles.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	titleStyle = lipgloss.NewStyle()
	priorityStyles = map[task.Priority]lipgloss.Style{}
	dueStyles = map[task.DueTag]lipgloss.Style{}
	markdownStyle = "notty"
}

// PriorityLabel returns the styled priority name.
func PriorityLabel(p task.Priority) string {
	if st, ok := priorityStyles[p]; ok {
		return st.Render(p.String())
	}
	return p.String()
}

// DueLabel returns the styled due tag name.
func DueLabel(d task.DueTag) string {
	if st, ok := dueStyles[d]; ok {
		return st.Render(d.String())
	}
	return d.String()
}

// TaskDetail renders a single task. The description is rendered as a
// markdown list: the main line as a heading, sub-items as bullets.
func TaskDetail(w io.Writer, e Entry) error {
	t := e.Task
	titleLine := fmt.Sprintf("Task #%d", e.Number)
	fmt.Fprintln(w, titleStyle.Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len(titleLine)))

	printField(w, "Priority", PriorityLabel(t.Priority))
	printField(w, "Date", t.Date.String())
	printField(w, "Time", t.Time.String())
	printField(w, "Due", DueLabel(t.Due))

	rendered, err := renderMarkdown(DescriptionMarkdown(t))
	if err != nil {
		return fmt.Errorf("rendering description: %w", err)
	}
	fmt.Fprint(w, rendered)
	return nil
}

// DescriptionMarkdown formats a task description as markdown.
func DescriptionMarkdown(t *task.Task) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(escapeMarkdown(t.Title()))
	b.WriteString("\n")
	if items := t.SubItems(); len(items) > 0 {
		b.WriteString("\n")
		for _, item := range items {
			b.WriteString("- ")
			b.WriteString(escapeMarkdown(item))
			b.WriteString("\n")
		}
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`, "<", `\<`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle),
		glamour.WithWordWrap(detailWrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// SummaryTable renders priority and due counts as a small dashboard.
func SummaryTable(w io.Writer, s query.Summary) {
	fmt.Fprintf(w, "%s\n", titleStyle.Render("Tasklist"))
	fmt.Fprintf(w, "Total: %d tasks\n\n", s.Total)

	const nameColW = 16
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-*s %6s", nameColW, "PRIORITY", "COUNT")))
	for _, pc := range s.Priorities {
		fmt.Fprintf(w, "%s %6d\n", padRight(PriorityLabel(pc.Priority), nameColW), pc.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-*s %6s", nameColW, "DUE", "COUNT")))
	for _, dc := range s.Due {
		fmt.Fprintf(w, "%s %6d\n", padRight(DueLabel(dc.Due), nameColW), dc.Count)
	}

	if s.PastDate > 0 {
		fmt.Fprintf(w, "\n%d task(s) dated before today\n", s.PastDate)
	}
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-12s %s\n", label+":", value)
}
