package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes data as indented JSON to the given writer.
func JSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorResponse is the JSON envelope for structured error output.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// JSONError writes a structured error to the given writer as JSON.
func JSONError(w io.Writer, code, msg string, details map[string]any) {
	resp := ErrorResponse{Error: msg, Code: code, Details: details}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) // best-effort; if writer fails, nothing we can do
}

// TaskRecord is the JSON shape of a numbered task in command output. Unlike
// the data file it uses readable names instead of color markers.
type TaskRecord struct {
	Number      int      `json:"number"`
	Priority    string   `json:"priority"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Due         string   `json:"due"`
	Description []string `json:"description"`
}

// Records converts entries to their JSON output shape.
func Records(entries []Entry) []TaskRecord {
	out := make([]TaskRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, TaskRecord{
			Number:      e.Number,
			Priority:    e.Task.Priority.String(),
			Date:        e.Task.Date.String(),
			Time:        e.Task.Time.String(),
			Due:         e.Task.Due.String(),
			Description: e.Task.Description,
		})
	}
	return out
}
