package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/tasklist/internal/query"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// Entry is a numbered task.
type Entry = task.Entry

// TaskCompact renders tasks one line per record.
func TaskCompact(w io.Writer, entries []Entry) {
	for _, e := range entries {
		fmt.Fprintln(w, formatTaskLine(e))
	}
}

// TaskDetailCompact renders a single task with its sub-items indented.
func TaskDetailCompact(w io.Writer, e Entry) {
	fmt.Fprintln(w, formatTaskLine(e))
	for _, item := range e.Task.SubItems() {
		fmt.Fprintln(w, "  - "+item)
	}
}

// SummaryCompact renders counts in compact format.
func SummaryCompact(w io.Writer, s query.Summary) {
	fmt.Fprintf(w, "%d tasks\n", s.Total)

	parts := make([]string, 0, len(s.Priorities))
	for _, pc := range s.Priorities {
		parts = append(parts, pc.Name+"="+strconv.Itoa(pc.Count))
	}
	fmt.Fprintln(w, "Priority: "+strings.Join(parts, " "))

	parts = parts[:0]
	for _, dc := range s.Due {
		parts = append(parts, dc.Name+"="+strconv.Itoa(dc.Count))
	}
	fmt.Fprintln(w, "Due: "+strings.Join(parts, " "))
}

// formatTaskLine builds the one-line representation of a task.
func formatTaskLine(e Entry) string {
	t := e.Task
	line := "#" + strconv.Itoa(e.Number) + " [" + t.Priority.Letter() + "/" + t.Due.String() + "] " +
		t.Date.String() + " " + t.Time.String() + " " + t.Title()
	if n := len(t.SubItems()); n > 0 {
		line += " (+" + strconv.Itoa(n) + ")"
	}
	return line
}
