package task

import "github.com/twiced-technology-gmbh/tasklist/internal/date"

// DueTagFor classifies taskDate against today: later is InTime, earlier is
// Overdue, equal is Today. The result is stored on the task and is not
// refreshed as days pass.
func DueTagFor(taskDate, today date.Date) DueTag {
	days := today.DaysUntil(taskDate)
	switch {
	case days > 0:
		return InTime
	case days < 0:
		return Overdue
	default:
		return Today
	}
}
