package query

import (
	"slices"
	"strings"

	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// FilterOptions defines which tasks to include. Empty slices match anything.
type FilterOptions struct {
	Priorities []task.Priority
	Due        []task.DueTag
	Search     string // case-insensitive substring match across description lines
}

// Filter returns entries matching all specified criteria (AND logic).
func Filter(entries []task.Entry, opts FilterOptions) []task.Entry {
	var result []task.Entry
	for _, e := range entries {
		if matches(e.Task, opts) {
			result = append(result, e)
		}
	}
	return result
}

func matches(t *task.Task, opts FilterOptions) bool {
	if len(opts.Priorities) > 0 && !slices.Contains(opts.Priorities, t.Priority) {
		return false
	}
	if len(opts.Due) > 0 && !slices.Contains(opts.Due, t.Due) {
		return false
	}
	if opts.Search != "" && !matchesSearch(t, opts.Search) {
		return false
	}
	return true
}

func matchesSearch(t *task.Task, query string) bool {
	q := strings.ToLower(query)
	for _, line := range t.Description {
		if strings.Contains(strings.ToLower(line), q) {
			return true
		}
	}
	return false
}

// ParsePriorities parses a list of priority names or letters.
func ParsePriorities(values []string) ([]task.Priority, error) {
	out := make([]task.Priority, 0, len(values))
	for _, v := range values {
		p, err := task.LookupPriority(v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ParseDueTags parses a list of due tag names or letters.
func ParseDueTags(values []string) ([]task.DueTag, error) {
	out := make([]task.DueTag, 0, len(values))
	for _, v := range values {
		d, err := task.LookupDueTag(v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
