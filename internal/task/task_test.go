package task

import (
	"testing"
	"time"

	"github.com/twiced-technology-gmbh/tasklist/internal/date"
)

func TestDueTagFor(t *testing.T) {
	today := date.New(2024, time.March, 10)
	tests := []struct {
		name string
		day  date.Date
		want DueTag
	}{
		{"later date is in time", date.New(2024, time.March, 15), InTime},
		{"earlier date is overdue", date.New(2024, time.March, 5), Overdue},
		{"same date is today", date.New(2024, time.March, 10), Today},
		{"tomorrow", date.New(2024, time.March, 11), InTime},
		{"yesterday", date.New(2024, time.March, 9), Overdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueTagFor(tt.day, today); got != tt.want {
				t.Errorf("DueTagFor(%s, %s) = %s, want %s", tt.day, today, got, tt.want)
			}
		})
	}
}

func TestDueTagIsFrozen(t *testing.T) {
	created := date.New(2024, time.March, 10)
	tk := New(Normal, date.New(2024, time.March, 10), date.Clock{}, []string{"x"}, created)
	if tk.Due != Today {
		t.Fatalf("Due = %s, want today", tk.Due)
	}

	// Nothing on the task depends on the current day once it is built.
	tk.Time, _ = date.NewClock(10, 0)
	if tk.Due != Today {
		t.Errorf("Due changed to %s without a date edit", tk.Due)
	}

	tk.SetDate(date.New(2024, time.March, 9), created)
	if tk.Due != Overdue {
		t.Errorf("after SetDate, Due = %s, want overdue", tk.Due)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"C", Critical, false},
		{"h", High, false},
		{" n ", Normal, false},
		{"L\t", Low, false},
		{"X", 0, true},
		{"", 0, true},
		{"critical", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePriority(%q) = %s, expected error", tt.input, got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParsePriority(%q) = %s, %v; want %s", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if p, err := LookupPriority("Critical"); err != nil || p != Critical {
		t.Errorf("LookupPriority(Critical) = %s, %v", p, err)
	}
	if p, err := LookupPriority("l"); err != nil || p != Low {
		t.Errorf("LookupPriority(l) = %s, %v", p, err)
	}
	if d, err := LookupDueTag("IN-TIME"); err != nil || d != InTime {
		t.Errorf("LookupDueTag(IN-TIME) = %s, %v", d, err)
	}
	if _, err := LookupDueTag("soon"); err == nil {
		t.Error("LookupDueTag(soon): expected error")
	}
}

func TestMarkers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"critical", Critical.Marker(), "\x1b[101m \x1b[0m"},
		{"high", High.Marker(), "\x1b[103m \x1b[0m"},
		{"normal", Normal.Marker(), "\x1b[102m \x1b[0m"},
		{"low", Low.Marker(), "\x1b[104m \x1b[0m"},
		{"overdue", Overdue.Marker(), "\x1b[101m \x1b[0m"},
		{"today", Today.Marker(), "\x1b[103m \x1b[0m"},
		{"in-time", InTime.Marker(), "\x1b[102m \x1b[0m"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s marker = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	ok := &Task{Priority: High, Due: Today, Description: []string{"a"}}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	bad := []*Task{
		{Due: Today, Description: []string{"a"}},
		{Priority: High, Description: []string{"a"}},
		{Priority: High, Due: Today},
		{Priority: High, Due: Today, Description: []string{"", "sub"}},
		{Priority: High, Due: Today, Description: []string{" \t"}},
	}
	for i, tk := range bad {
		if err := tk.Validate(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestClone(t *testing.T) {
	orig := &Task{Priority: High, Due: Today, Description: []string{"a", "b"}}
	c := orig.Clone()
	c.Description[0] = "changed"
	if orig.Description[0] != "a" {
		t.Error("Clone shares the description slice")
	}
}
