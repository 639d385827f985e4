package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// Fixed layout of the task table.
const (
	tableBorder = "+----+------------+-------+---+---+--------------------------------------------+"
	tableHeader = "| N  |    Date    | Time  | P | D |                   Task                     |"
	blankPrefix = "|    |            |       |   |   "

	// ChunkWidth is the width of the Task column. Longer description lines
	// wrap onto continuation rows.
	ChunkWidth = 44

	numberCellWidth = 5
)

// Markers selects how the P and D columns are drawn.
type Markers int

const (
	// MarkersColor draws the escape-sequence markers stored on each task.
	MarkersColor Markers = iota
	// MarkersLetter draws the one-letter codes (C/H/N/L, O/T/I).
	MarkersLetter
)

// TaskTable renders entries as the fixed-width task table. The caller
// handles the empty case.
func TaskTable(w io.Writer, entries []task.Entry) {
	TaskTableWith(w, entries, MarkersColor)
}

// TaskTableWith renders the task table with the given marker style.
func TaskTableWith(w io.Writer, entries []task.Entry, markers Markers) {
	fmt.Fprintln(w, tableBorder)
	fmt.Fprintln(w, tableHeader)
	fmt.Fprintln(w, tableBorder)

	for _, e := range entries {
		prefix := taskPrefix(e, markers)
		for i, chunk := range descriptionChunks(e.Task.Description) {
			if i == 0 {
				fmt.Fprintln(w, prefix+"|"+padChunk(chunk)+"|")
				continue
			}
			fmt.Fprintln(w, blankPrefix+"|"+padChunk(chunk)+"|")
		}
		fmt.Fprintln(w, tableBorder)
	}
}

func taskPrefix(e task.Entry, markers Markers) string {
	p, d := e.Task.Priority.Marker(), e.Task.Due.Marker()
	if markers == MarkersLetter {
		p, d = e.Task.Priority.Letter(), e.Task.Due.Letter()
	}
	number := fmt.Sprintf("%-*s", numberCellWidth, fmt.Sprintf("| %d  ", e.Number))
	return fmt.Sprintf("%s| %s | %s | %s | %s ", number, e.Task.Date, e.Task.Time, p, d)
}

// descriptionChunks splits every description line into ChunkWidth-rune
// pieces. An empty first line still yields one blank chunk so the task row
// is drawn; empty later lines yield nothing.
func descriptionChunks(lines []string) []string {
	var chunks []string
	for i, line := range lines {
		pieces := Chunk(line, ChunkWidth)
		if len(pieces) == 0 && i == 0 {
			pieces = []string{""}
		}
		chunks = append(chunks, pieces...)
	}
	if len(chunks) == 0 {
		chunks = []string{""}
	}
	return chunks
}

// Chunk splits s into consecutive pieces of at most width runes.
func Chunk(s string, width int) []string {
	runes := []rune(s)
	var out []string
	for len(runes) > 0 {
		n := min(width, len(runes))
		out = append(out, string(runes[:n]))
		runes = runes[n:]
	}
	return out
}

func padChunk(s string) string {
	n := len([]rune(s))
	if n >= ChunkWidth {
		return s
	}
	return s + strings.Repeat(" ", ChunkWidth-n)
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
