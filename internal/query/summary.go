package query

import (
	"github.com/twiced-technology-gmbh/tasklist/internal/date"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// PriorityCount holds a count for a priority.
type PriorityCount struct {
	Priority task.Priority `json:"-"`
	Name     string        `json:"priority"`
	Count    int           `json:"count"`
}

// DueCount holds a count for a stored due tag.
type DueCount struct {
	Due   task.DueTag `json:"-"`
	Name  string      `json:"due"`
	Count int         `json:"count"`
}

// Summary is the aggregate view printed by the summary command.
type Summary struct {
	Total      int             `json:"total_tasks"`
	Priorities []PriorityCount `json:"priorities"`
	Due        []DueCount      `json:"due"`
	// PastDate counts tasks whose date is before today, whatever their
	// stored tag says. Tags are frozen, so this can exceed the overdue count.
	PastDate int `json:"past_date"`
}

// Summarize counts tasks per priority and per stored due tag.
func Summarize(tasks []*task.Task, today date.Date) Summary {
	s := Summary{Total: len(tasks)}

	prio := make(map[task.Priority]int, len(task.Priorities()))
	due := make(map[task.DueTag]int, len(task.DueTags()))
	for _, t := range tasks {
		prio[t.Priority]++
		due[t.Due]++
		if t.Date.Before(today.Time) {
			s.PastDate++
		}
	}

	for _, p := range task.Priorities() {
		s.Priorities = append(s.Priorities, PriorityCount{Priority: p, Name: p.String(), Count: prio[p]})
	}
	for _, d := range task.DueTags() {
		s.Due = append(s.Due, DueCount{Due: d, Name: d.String(), Count: due[d]})
	}
	return s
}
