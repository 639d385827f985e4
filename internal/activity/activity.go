// Package activity appends a JSONL record of every change made to the task
// list.
package activity

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	logFileMode   = 0o600
	maxLogEntries = 10000 // truncate oldest entries when log exceeds this size
)

// Actions recorded in the log.
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
	ActionSave   = "save"
)

// Entry represents a single activity log entry.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Task      int       `json:"task,omitempty"`
	Detail    string    `json:"detail"`
}

// Recorder receives change notifications from the console and the browser.
type Recorder interface {
	Record(action string, number int, detail string)
}

// Nop is a Recorder that drops everything.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(string, int, string) {}

// Log is a Recorder backed by a JSONL file.
type Log struct {
	Path string
	// OnError is called when an entry cannot be written. Recording never
	// fails the caller.
	OnError func(error)
	now     func() time.Time
}

// NewLog returns a Log writing to path.
func NewLog(path string, onError func(error)) *Log {
	return &Log{Path: path, OnError: onError, now: time.Now}
}

// Record implements Recorder.
func (l *Log) Record(action string, number int, detail string) {
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	entry := Entry{
		Timestamp: now().UTC(),
		Action:    action,
		Task:      number,
		Detail:    detail,
	}
	if err := Append(l.Path, entry); err != nil && l.OnError != nil {
		l.OnError(err)
	}
}

// Append appends an entry to the log file at path.
// If the log exceeds maxLogEntries, the oldest entries are truncated.
func Append(path string, entry Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode) //nolint:gosec // log path from config
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling log entry: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}

	// Truncate if needed (best-effort; errors are non-fatal).
	_ = truncateIfNeeded(path, maxLogEntries)

	return nil
}

// Read returns all entries in the log file, oldest first. A missing file
// yields no entries.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path) //nolint:gosec // log path from config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("activity log line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}

// truncateIfNeeded rewrites the log keeping only the most recent limit lines.
func truncateIfNeeded(path string, limit int) error {
	f, err := os.Open(path) //nolint:gosec // trusted path
	if err != nil {
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	_ = f.Close()

	if err := scanner.Err(); err != nil {
		return err
	}

	if len(lines) <= limit {
		return nil
	}

	lines = lines[len(lines)-limit:]

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(buf.String()), logFileMode)
}
