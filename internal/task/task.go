// Package task handles the task model and its JSON file.
package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/twiced-technology-gmbh/tasklist/internal/date"
)

// Task is one entry of the task list. Field order is the order of keys in
// tasklist.json.
type Task struct {
	Priority    Priority   `json:"priority"`
	Date        date.Date  `json:"date"`
	Time        date.Clock `json:"time"`
	Description []string   `json:"taskDescription"`
	Due         DueTag     `json:"dueDate"`
}

// New builds a task and derives its due tag from d and today.
func New(p Priority, d date.Date, c date.Clock, description []string, today date.Date) *Task {
	return &Task{
		Priority:    p,
		Date:        d,
		Time:        c,
		Description: description,
		Due:         DueTagFor(d, today),
	}
}

// SetDate replaces the date and recomputes the due tag against today.
func (t *Task) SetDate(d, today date.Date) {
	t.Date = d
	t.Due = DueTagFor(d, today)
}

// Title returns the main (first) description line.
func (t *Task) Title() string {
	if len(t.Description) == 0 {
		return ""
	}
	return t.Description[0]
}

// SubItems returns the description lines after the first.
func (t *Task) SubItems() []string {
	if len(t.Description) < 2 { //nolint:mnd // main line + at least one sub-item
		return nil
	}
	return t.Description[1:]
}

// Validate checks the invariants a stored task must satisfy.
func (t *Task) Validate() error {
	if !t.Priority.Valid() {
		return errors.New("missing priority")
	}
	if !t.Due.Valid() {
		return errors.New("missing due tag")
	}
	if len(t.Description) == 0 {
		return errors.New("empty description")
	}
	if strings.TrimSpace(t.Description[0]) == "" {
		return errors.New("blank main description line")
	}
	return nil
}

// Clone returns a deep copy of t.
func (t *Task) Clone() *Task {
	c := *t
	c.Description = append([]string(nil), t.Description...)
	return &c
}

// String is a short debugging representation.
func (t *Task) String() string {
	return fmt.Sprintf("%s %s %s/%s %q", t.Date, t.Time, t.Priority, t.Due, t.Title())
}
