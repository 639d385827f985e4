package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Rendered color markers. These exact strings are what the table shows in
// the P and D columns and what tasklist.json stores.
const (
	markerRed    = "\u001b[101m \u001b[0m"
	markerGreen  = "\u001b[102m \u001b[0m"
	markerYellow = "\u001b[103m \u001b[0m"
	markerBlue   = "\u001b[104m \u001b[0m"
)

// Priority is the urgency category of a task.
type Priority int

// Priorities in descending urgency.
const (
	Critical Priority = iota + 1
	High
	Normal
	Low
)

var priorityInfo = map[Priority]struct{ letter, name, marker string }{
	Critical: {"C", "critical", markerRed},
	High:     {"H", "high", markerYellow},
	Normal:   {"N", "normal", markerGreen},
	Low:      {"L", "low", markerBlue},
}

// Priorities returns all priorities in descending urgency.
func Priorities() []Priority {
	return []Priority{Critical, High, Normal, Low}
}

// ParsePriority maps a prompt answer (C, H, N or L, case-insensitive,
// surrounding whitespace ignored) to a Priority.
func ParsePriority(input string) (Priority, error) {
	letter := strings.ToUpper(strings.TrimSpace(input))
	for _, p := range Priorities() {
		if priorityInfo[p].letter == letter {
			return p, nil
		}
	}
	return 0, ValidatePriority(input)
}

// LookupPriority accepts either a letter or a full name, case-insensitive.
func LookupPriority(s string) (Priority, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Priorities() {
		if priorityInfo[p].name == key || strings.ToLower(priorityInfo[p].letter) == key {
			return p, nil
		}
	}
	return 0, ValidatePriority(s)
}

// Valid reports whether p is one of the four priorities.
func (p Priority) Valid() bool {
	_, ok := priorityInfo[p]
	return ok
}

// Letter returns the one-letter prompt code (C, H, N, L).
func (p Priority) Letter() string { return priorityInfo[p].letter }

// Marker returns the colored marker shown in the P column.
func (p Priority) Marker() string { return priorityInfo[p].marker }

// String returns the lower-case name.
func (p Priority) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityInfo[p].name
}

// MarshalJSON writes the marker string.
func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("marshaling invalid priority %d", int(p))
	}
	return json.Marshal(p.Marker())
}

// UnmarshalJSON reads a marker string.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, candidate := range Priorities() {
		if candidate.Marker() == s {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown priority marker %q", s)
}

// DueTag classifies a task date relative to the day it was computed.
type DueTag int

// Due tags.
const (
	Overdue DueTag = iota + 1
	Today
	InTime
)

var dueInfo = map[DueTag]struct{ letter, name, marker string }{
	Overdue: {"O", "overdue", markerRed},
	Today:   {"T", "today", markerYellow},
	InTime:  {"I", "in-time", markerGreen},
}

// DueTags returns all due tags, most urgent first.
func DueTags() []DueTag {
	return []DueTag{Overdue, Today, InTime}
}

// LookupDueTag accepts a name (overdue, today, in-time) or letter, case-insensitive.
func LookupDueTag(s string) (DueTag, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, d := range DueTags() {
		if dueInfo[d].name == key || strings.ToLower(dueInfo[d].letter) == key {
			return d, nil
		}
	}
	return 0, ValidateDueTag(s)
}

// Valid reports whether d is one of the three due tags.
func (d DueTag) Valid() bool {
	_, ok := dueInfo[d]
	return ok
}

// Letter returns a one-letter code (O, T, I) for colorless output.
func (d DueTag) Letter() string { return dueInfo[d].letter }

// Marker returns the colored marker shown in the D column.
func (d DueTag) Marker() string { return dueInfo[d].marker }

// String returns the lower-case name.
func (d DueTag) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DueTag(%d)", int(d))
	}
	return dueInfo[d].name
}

// MarshalJSON writes the marker string.
func (d DueTag) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("marshaling invalid due tag %d", int(d))
	}
	return json.Marshal(d.Marker())
}

// UnmarshalJSON reads a marker string.
func (d *DueTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, candidate := range DueTags() {
		if candidate.Marker() == s {
			*d = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown due marker %q", s)
}
