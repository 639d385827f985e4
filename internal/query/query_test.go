package query

import (
	"testing"
	"time"

	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
	"github.com/twiced-technology-gmbh/tasklist/internal/date"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

var today = date.New(2024, time.March, 10)

func clock(t *testing.T, h, m int) date.Clock {
	t.Helper()
	c, err := date.NewClock(h, m)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func fixture(t *testing.T) *task.List {
	t.Helper()
	return task.NewList([]*task.Task{
		task.New(task.Low, date.New(2024, time.March, 12), clock(t, 9, 0), []string{"water plants"}, today),
		task.New(task.Critical, date.New(2024, time.March, 1), clock(t, 18, 30), []string{"pay rent", "bank"}, today),
		task.New(task.High, today, clock(t, 8, 0), []string{"Buy milk"}, today),
		task.New(task.Critical, date.New(2024, time.March, 12), clock(t, 7, 15), []string{"file taxes"}, today),
	})
}

func numbers(entries []task.Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Number
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want []int
	}{
		{"default keeps list order", ListOptions{}, []int{1, 2, 3, 4}},
		{"reverse", ListOptions{Reverse: true}, []int{4, 3, 2, 1}},
		{"by date then time", ListOptions{SortBy: SortDate}, []int{2, 3, 4, 1}},
		{"by priority, ties in list order", ListOptions{SortBy: SortPriority}, []int{2, 4, 3, 1}},
		{"by due", ListOptions{SortBy: SortDue}, []int{2, 3, 4, 1}},
		{"filter priority", ListOptions{Filter: FilterOptions{Priorities: []task.Priority{task.Critical}}}, []int{2, 4}},
		{"filter due", ListOptions{Filter: FilterOptions{Due: []task.DueTag{task.Today, task.Overdue}}}, []int{2, 3}},
		{"search is case-insensitive and covers sub-items", ListOptions{Filter: FilterOptions{Search: "BANK"}}, []int{2}},
		{"limit after sort", ListOptions{SortBy: SortPriority, Limit: 2}, []int{2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := List(fixture(t), tt.opts)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if !equalInts(numbers(got), tt.want) {
				t.Errorf("numbers = %v, want %v", numbers(got), tt.want)
			}
		})
	}
}

func TestListRejectsUnknownSort(t *testing.T) {
	_, err := List(fixture(t), ListOptions{SortBy: "title"})
	if !clierr.HasCode(err, clierr.InvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestParseFilters(t *testing.T) {
	prios, err := ParsePriorities([]string{"c", "High"})
	if err != nil || len(prios) != 2 || prios[0] != task.Critical || prios[1] != task.High {
		t.Errorf("ParsePriorities = %v, %v", prios, err)
	}
	if _, err := ParsePriorities([]string{"urgent"}); err == nil {
		t.Error("ParsePriorities(urgent): expected error")
	}

	due, err := ParseDueTags([]string{"overdue", "t"})
	if err != nil || len(due) != 2 || due[0] != task.Overdue || due[1] != task.Today {
		t.Errorf("ParseDueTags = %v, %v", due, err)
	}
}

func TestSummarize(t *testing.T) {
	tasks := fixture(t).Tasks()
	// Stored tags are frozen; a later day only moves PastDate.
	s := Summarize(tasks, date.New(2024, time.March, 11))

	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	wantPrio := map[task.Priority]int{task.Critical: 2, task.High: 1, task.Normal: 0, task.Low: 1}
	for _, pc := range s.Priorities {
		if pc.Count != wantPrio[pc.Priority] {
			t.Errorf("%s count = %d, want %d", pc.Name, pc.Count, wantPrio[pc.Priority])
		}
	}
	wantDue := map[task.DueTag]int{task.Overdue: 1, task.Today: 1, task.InTime: 2}
	for _, dc := range s.Due {
		if dc.Count != wantDue[dc.Due] {
			t.Errorf("%s count = %d, want %d", dc.Name, dc.Count, wantDue[dc.Due])
		}
	}
	if s.PastDate != 2 {
		t.Errorf("PastDate = %d, want 2", s.PastDate)
	}
}
