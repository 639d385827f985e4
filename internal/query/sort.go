package query

import (
	"sort"

	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// Sort fields.
const (
	SortNumber   = "number"
	SortDate     = "date"
	SortPriority = "priority"
	SortDue      = "due"
)

// SortFields returns the accepted --sort values.
func SortFields() []string {
	return []string{SortNumber, SortDate, SortPriority, SortDue}
}

// ValidateSortField rejects unknown sort fields.
func ValidateSortField(field string) error {
	for _, f := range SortFields() {
		if f == field {
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidInput, "invalid sort field %q", field).
		WithDetails(map[string]any{"field": field, "allowed": SortFields()})
}

// Sort orders entries by field. Ties keep list order. Priority and due sort
// most urgent first.
func Sort(entries []task.Entry, field string, reverse bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if reverse {
			a, b = b, a
		}
		return less(a, b, field)
	})
}

func less(a, b task.Entry, field string) bool {
	switch field {
	case SortDate:
		return beforeDateTime(a.Task, b.Task)
	case SortPriority:
		if a.Task.Priority != b.Task.Priority {
			return a.Task.Priority < b.Task.Priority
		}
	case SortDue:
		if a.Task.Due != b.Task.Due {
			return a.Task.Due < b.Task.Due
		}
		return beforeDateTime(a.Task, b.Task)
	}
	return a.Number < b.Number
}

func beforeDateTime(a, b *task.Task) bool {
	if !a.Date.Equal(b.Date.Time) {
		return a.Date.Before(b.Date.Time)
	}
	return a.Time.Before(b.Time)
}
