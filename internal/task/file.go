package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/twiced-technology-gmbh/tasklist/internal/date"
	"github.com/twiced-technology-gmbh/tasklist/internal/filelock"
)

// DefaultFile is the data file name, resolved against the working directory.
const DefaultFile = "tasklist.json"

// Read parses a task file under a shared lock. A missing file yields no
// tasks and no error.
func Read(path string) ([]*Task, error) {
	f, err := filelock.OpenRead(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening task file: %w", err)
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}

	tasks, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tasks, nil
}

// storedTask is the on-disk shape of a Task. Date and time are pointers so
// that a missing key is told apart from a zero value.
type storedTask struct {
	Priority    Priority    `json:"priority"`
	Date        *date.Date  `json:"date"`
	Time        *date.Clock `json:"time"`
	Description []string    `json:"taskDescription"`
	Due         DueTag      `json:"dueDate"`
}

// Decode parses a JSON array of tasks and checks every task's invariants.
// Every key is required.
func Decode(data []byte) ([]*Task, error) {
	var stored []*storedTask
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	tasks := make([]*Task, len(stored))
	for i, st := range stored {
		switch {
		case st == nil:
			return nil, fmt.Errorf("task %d: null entry", i+1)
		case st.Date == nil:
			return nil, fmt.Errorf("task %d: missing date", i+1)
		case st.Time == nil:
			return nil, fmt.Errorf("task %d: missing time", i+1)
		}
		t := &Task{
			Priority:    st.Priority,
			Date:        *st.Date,
			Time:        *st.Time,
			Description: st.Description,
			Due:         st.Due,
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks[i] = t
	}
	return tasks, nil
}

// Encode serializes tasks as a JSON array indented by one space per level,
// without a trailing newline.
func Encode(tasks []*Task) ([]byte, error) {
	if tasks == nil {
		tasks = []*Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write replaces the file at path with tasks. The file is created if absent
// and held under an exclusive lock while it is rewritten.
func Write(path string, tasks []*Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}

	f, err := filelock.Open(path)
	if err != nil {
		return fmt.Errorf("opening task file: %w", err)
	}
	if err := f.Truncate(0); err != nil {
		_ = f.Close()
		return fmt.Errorf("truncating task file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing task file: %w", err)
	}
	return f.Close()
}

// FileStore loads and saves a task list at a fixed path.
type FileStore struct {
	Path string
}

// Load reads the store's file.
func (s FileStore) Load() ([]*Task, error) {
	return Read(s.Path)
}

// Save rewrites the store's file.
func (s FileStore) Save(tasks []*Task) error {
	return Write(s.Path, tasks)
}
