// Package query filters, sorts and summarises numbered tasks for the
// non-interactive commands.
package query

import (
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// ListOptions controls how tasks are listed.
type ListOptions struct {
	Filter  FilterOptions
	SortBy  string
	Reverse bool
	Limit   int
}

// List applies filters, sorting and the limit to the list's entries. Entry
// numbers always refer to positions in the full list, so they stay valid
// arguments for show and the console's edit and delete flows.
func List(l *task.List, opts ListOptions) ([]task.Entry, error) {
	field := opts.SortBy
	if field == "" {
		field = SortNumber
	}
	if err := ValidateSortField(field); err != nil {
		return nil, err
	}

	entries := Filter(l.Entries(), opts.Filter)
	Sort(entries, field, opts.Reverse)

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	return entries, nil
}
