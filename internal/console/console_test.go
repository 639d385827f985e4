package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
	"github.com/twiced-technology-gmbh/tasklist/internal/date"
	"github.com/twiced-technology-gmbh/tasklist/internal/logging"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

const (
	border = "+----+------------+-------+---+---+--------------------------------------------+"
	header = "| N  |    Date    | Time  | P | D |                   Task                     |"
	green  = "\x1b[102m \x1b[0m"
	yellow = "\x1b[103m \x1b[0m"
)

var today = date.New(2024, time.March, 10)

type memStore struct {
	saved [][]*task.Task
	err   error
}

func (s *memStore) Save(tasks []*task.Task) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, tasks)
	return nil
}

type recorded struct {
	action string
	number int
}

type memRecorder struct{ entries []recorded }

func (r *memRecorder) Record(action string, number int, _ string) {
	r.entries = append(r.entries, recorded{action, number})
}

type session struct {
	console *Console
	store   *memStore
	rec     *memRecorder
	out     *bytes.Buffer
}

func newSession(input string, tasks ...*task.Task) *session {
	s := &session{store: &memStore{}, rec: &memRecorder{}, out: &bytes.Buffer{}}
	s.console = New(task.NewList(tasks), Options{
		In:       strings.NewReader(input),
		Out:      s.out,
		Store:    s.store,
		Today:    func() date.Date { return today },
		Recorder: s.rec,
	})
	return s
}

func (s *session) run(t *testing.T) {
	t.Helper()
	if err := s.console.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func mustClock(t *testing.T, h, m int) date.Clock {
	t.Helper()
	c, err := date.NewClock(h, m)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestPrintEmpty(t *testing.T) {
	s := newSession("print\nend\n")
	s.run(t)

	want := lines(promptAction, msgNoTasks, promptAction, msgExiting)
	if s.out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", s.out, want)
	}
	if len(s.store.saved) != 0 {
		t.Error("empty list was saved")
	}
}

func TestAddHighToday(t *testing.T) {
	s := newSession("add\nh\n2024-03-10\n09:00\nBuy milk\n\nprint\nend\n")
	s.run(t)

	want := lines(
		promptAction,
		promptPriority,
		promptDate,
		promptTime,
		promptDescription,
		promptAction,
		border,
		header,
		border,
		"| 1  | 2024-03-10 | 09:00 | "+yellow+" | "+yellow+" |Buy milk                                    |",
		border,
		promptAction,
		msgExiting,
	)
	if s.out.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", s.out, want)
	}

	if len(s.store.saved) != 1 || len(s.store.saved[0]) != 1 {
		t.Fatalf("saved = %v, want one save of one task", s.store.saved)
	}
	got := s.store.saved[0][0]
	if got.Priority != task.High || got.Due != task.Today || got.Title() != "Buy milk" {
		t.Errorf("saved task = %v", got)
	}
	if len(s.rec.entries) != 2 || s.rec.entries[0] != (recorded{"add", 1}) || s.rec.entries[1].action != "save" {
		t.Errorf("recorded = %v", s.rec.entries)
	}
}

func TestAddRetriesInvalidInput(t *testing.T) {
	input := lines(
		"ADD",
		"x", " n ",
		"2024-02-30", "2024-3", "2024-3-15-extra",
		"24:00", "9", "7:05:99",
		"  first  ", " sub ", "",
		"end",
	)
	s := newSession(input)
	s.run(t)

	want := lines(
		promptAction,
		promptPriority, promptPriority,
		promptDate, msgInvalidDate, promptDate, msgInvalidDate, promptDate,
		promptTime, msgInvalidTime, promptTime, msgInvalidTime, promptTime,
		promptDescription,
		promptAction,
		msgExiting,
	)
	if s.out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", s.out, want)
	}

	tasks := s.store.saved[0]
	got := tasks[0]
	if got.Priority != task.Normal || got.Date.String() != "2024-03-15" || got.Time.String() != "07:05" {
		t.Errorf("task = %v", got)
	}
	if got.Due != task.InTime {
		t.Errorf("due = %s, want in-time", got.Due)
	}
	if len(got.Description) != 2 || got.Description[0] != "first" || got.Description[1] != "sub" {
		t.Errorf("description = %q", got.Description)
	}
}

func TestBlankTaskAbortsAdd(t *testing.T) {
	s := newSession(lines("add", "C", "2024-03-01", "10:00", "   ", "print", "end"))
	s.run(t)

	want := lines(
		promptAction, promptPriority, promptDate, promptTime, promptDescription,
		msgBlankTask,
		promptAction, msgNoTasks,
		promptAction, msgExiting,
	)
	if s.out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", s.out, want)
	}
}

func TestInvalidAction(t *testing.T) {
	s := newSession(lines(" add", "list", "end"))
	s.run(t)

	want := lines(promptAction, msgInvalidAction, promptAction, msgInvalidAction, promptAction, msgExiting)
	if s.out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", s.out, want)
	}
}

func TestInvalidActionIsLogged(t *testing.T) {
	var logs bytes.Buffer
	s := newSession(lines("list", "end"))
	s.console.logger = logging.New(&logs, logging.Options{Level: log.DebugLevel, Formatter: log.TextFormatter})
	s.run(t)

	if !strings.Contains(logs.String(), clierr.InvalidAction) {
		t.Errorf("log does not carry %s:\n%s", clierr.InvalidAction, logs.String())
	}

	err := invalidAction("list")
	if err.Code != clierr.InvalidAction || err.Details["action"] != "list" {
		t.Errorf("invalidAction = %+v", err)
	}
}

func existing(t *testing.T) []*task.Task {
	t.Helper()
	return []*task.Task{
		task.New(task.Low, date.New(2024, time.March, 15), mustClock(t, 9, 0), []string{"one"}, today),
		task.New(task.High, date.New(2024, time.March, 5), mustClock(t, 10, 0), []string{"two"}, today),
		task.New(task.Normal, today, mustClock(t, 11, 0), []string{"three"}, today),
	}
}

func TestEditInvalidFieldNeverMutates(t *testing.T) {
	tasks := existing(t)
	before := tasks[0].Clone()
	s := newSession(lines("edit", "1", "Priority", "desc", "time", "18:30", "end"), tasks...)
	s.run(t)

	out := s.out.String()
	if n := strings.Count(out, msgInvalidField+"\n"); n != 2 {
		t.Errorf("%q printed %d times, want 2", msgInvalidField, n)
	}
	if !strings.Contains(out, msgChanged+"\n") {
		t.Errorf("missing %q", msgChanged)
	}

	got := s.console.List().Tasks()[0]
	if got.Priority != before.Priority || got.Date != before.Date || got.Due != before.Due {
		t.Errorf("unrelated fields changed: %v", got)
	}
	if got.Time.String() != "18:30" {
		t.Errorf("time = %s, want 18:30", got.Time)
	}
}

func TestEditDateRecomputesDue(t *testing.T) {
	s := newSession(lines("edit", "1", "date", "2024-03-01", "end"), existing(t)...)
	s.run(t)

	got := s.store.saved[0][0]
	if got.Date.String() != "2024-03-01" || got.Due != task.Overdue {
		t.Errorf("task = %v", got)
	}
	if got.Priority != task.Low {
		t.Errorf("priority = %s, want low", got.Priority)
	}
}

func TestEditTaskBlankAborts(t *testing.T) {
	s := newSession(lines("edit", "2", "task", "", "end"), existing(t)...)
	s.run(t)

	if got := s.store.saved[0][1].Title(); got != "two" {
		t.Errorf("title = %q, want unchanged", got)
	}
	if !strings.Contains(s.out.String(), msgBlankTask+"\n"+promptAction+"\n") {
		t.Errorf("blank task did not return to the menu:\n%s", s.out)
	}
}

func TestEditInvalidNumber(t *testing.T) {
	s := newSession(lines("edit", "0", "4", "two", "3", "priority", "c", "end"), existing(t)...)
	s.run(t)

	out := s.out.String()
	if n := strings.Count(out, "Input the task number (1-3):\n"); n != 4 {
		t.Errorf("number prompt printed %d times, want 4", n)
	}
	if n := strings.Count(out, msgInvalidNumber+"\n"); n != 3 {
		t.Errorf("%q printed %d times, want 3", msgInvalidNumber, n)
	}
	if s.store.saved[0][2].Priority != task.Critical {
		t.Errorf("priority = %s, want critical", s.store.saved[0][2].Priority)
	}
}

func TestDeleteShifts(t *testing.T) {
	s := newSession(lines("delete", "2", "end"), existing(t)...)
	s.run(t)

	if !strings.Contains(s.out.String(), msgDeleted+"\n") {
		t.Errorf("missing %q", msgDeleted)
	}
	saved := s.store.saved[0]
	if len(saved) != 2 || saved[0].Title() != "one" || saved[1].Title() != "three" {
		t.Errorf("saved = %v", saved)
	}
	if s.rec.entries[0] != (recorded{"delete", 2}) {
		t.Errorf("recorded = %v", s.rec.entries)
	}
}

func TestDeleteLastSkipsSave(t *testing.T) {
	tasks := existing(t)[:1]
	s := newSession(lines("delete", "1", "delete", "end"), tasks...)
	s.run(t)

	want := lines(
		promptAction,
		border, header, border,
		"| 1  | 2024-03-15 | 09:00 | \x1b[104m \x1b[0m | "+green+" |one                                         |",
		border,
		"Input the task number (1-1):",
		msgDeleted,
		promptAction,
		msgNoTasks,
		promptAction,
		msgExiting,
	)
	if s.out.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", s.out, want)
	}
	if len(s.store.saved) != 0 {
		t.Error("empty list was saved")
	}
}

func TestEndOfInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		tasks     int
		wantSaved int
	}{
		{"at menu, empty list", "", 0, -1},
		{"mid add discards partial task", "add\nh\n2024-03-10\n", 0, -1},
		{"mid description", "add\nh\n2024-03-10\n09:00\nBuy milk\n", 0, -1},
		{"with tasks saves them", "print\n", 3, 3},
		{"mid edit keeps list", "edit\n1\n", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(tt.input, existing(t)[:tt.tasks]...)
			s.run(t)

			if !strings.HasSuffix(s.out.String(), msgExiting+"\n") {
				t.Errorf("output does not end with exit message:\n%s", s.out)
			}
			switch {
			case tt.wantSaved < 0 && len(s.store.saved) != 0:
				t.Errorf("saved %d times, want none", len(s.store.saved))
			case tt.wantSaved >= 0 && (len(s.store.saved) != 1 || len(s.store.saved[0]) != tt.wantSaved):
				t.Errorf("saved = %v, want one save of %d tasks", s.store.saved, tt.wantSaved)
			}
		})
	}
}

func TestSaveErrorIsReturned(t *testing.T) {
	s := newSession("end\n", existing(t)...)
	s.store.err = errors.New("disk full")

	err := s.console.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Run error = %v, want save error", err)
	}
	if strings.Contains(s.out.String(), msgExiting) {
		t.Error("exit message printed after failed save")
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newSession("print\n")
	if err := s.console.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestRunWithoutStore(t *testing.T) {
	c := New(task.NewList(existing(t)), Options{In: strings.NewReader("end\n")})
	if err := c.Run(context.Background()); err != nil {
		t.Errorf("Run: %v", err)
	}
}
