package task

import (
	"slices"
	"strconv"
)

// Editable field names accepted by the edit flow.
const (
	FieldPriority = "priority"
	FieldDate     = "date"
	FieldTime     = "time"
	FieldTask     = "task"
)

// EditableFields returns the field names in prompt order.
func EditableFields() []string {
	return []string{FieldPriority, FieldDate, FieldTime, FieldTask}
}

// Entry pairs a task with its 1-based position in the list.
type Entry struct {
	Number int   `json:"number"`
	Task   *Task `json:"task"`
}

// List is the ordered task collection. Positions are 1-based and always
// equal to the current index + 1; deleting shifts later tasks down.
type List struct {
	tasks []*Task
}

// NewList wraps tasks in a List. The slice is not copied.
func NewList(tasks []*Task) *List {
	return &List{tasks: tasks}
}

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// IsEmpty reports whether the list has no tasks.
func (l *List) IsEmpty() bool { return len(l.tasks) == 0 }

// Tasks returns the tasks in order. The returned slice is a copy; the tasks
// are shared.
func (l *List) Tasks() []*Task {
	return slices.Clone(l.tasks)
}

// Entries returns every task with its position.
func (l *List) Entries() []Entry {
	entries := make([]Entry, len(l.tasks))
	for i, t := range l.tasks {
		entries[i] = Entry{Number: i + 1, Task: t}
	}
	return entries
}

// Add appends t and returns its position.
func (l *List) Add(t *Task) int {
	l.tasks = append(l.tasks, t)
	return len(l.tasks)
}

// Get returns the task at position n.
func (l *List) Get(n int) (*Task, error) {
	if n < 1 || n > len(l.tasks) {
		return nil, ValidateTaskNumber(strconv.Itoa(n), len(l.tasks))
	}
	return l.tasks[n-1], nil
}

// Remove deletes the task at position n and returns it.
func (l *List) Remove(n int) (*Task, error) {
	t, err := l.Get(n)
	if err != nil {
		return nil, err
	}
	l.tasks = slices.Delete(l.tasks, n-1, n)
	return t, nil
}

// ParseNumber parses a user-entered position and checks it is in [1, Len()].
func (l *List) ParseNumber(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(l.tasks) {
		return 0, ValidateTaskNumber(input, len(l.tasks))
	}
	return n, nil
}
