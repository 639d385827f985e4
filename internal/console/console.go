// Package console runs the interactive task menu: a line-oriented
// read-eval loop over stdin and stdout.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/twiced-technology-gmbh/tasklist/internal/activity"
	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
	"github.com/twiced-technology-gmbh/tasklist/internal/date"
	"github.com/twiced-technology-gmbh/tasklist/internal/logging"
	"github.com/twiced-technology-gmbh/tasklist/internal/output"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// ErrAborted ends the current operation and returns control to the menu.
// It is returned when a description's main line is blank.
var ErrAborted = errors.New("operation aborted")

// Menu actions.
const (
	ActionAdd    = "add"
	ActionPrint  = "print"
	ActionEdit   = "edit"
	ActionDelete = "delete"
	ActionEnd    = "end"
)

// Protocol lines.
const (
	promptAction      = "Input an action (add, print, edit, delete, end):"
	promptPriority    = "Input the task priority (C, H, N, L):"
	promptDate        = "Input the date (yyyy-mm-dd):"
	promptTime        = "Input the time (hh:mm):"
	promptDescription = "Input a new task (enter a blank line to end):"
	promptField       = "Input a field to edit (priority, date, time, task):"
	promptNumberFmt   = "Input the task number (1-%d):"

	msgInvalidAction = "The input action is invalid"
	msgInvalidDate   = "The input date is invalid"
	msgInvalidTime   = "The input time is invalid"
	msgBlankTask     = "The task is blank"
	msgInvalidNumber = "Invalid task number"
	msgInvalidField  = "Invalid field"
	msgChanged       = "The task is changed"
	msgDeleted       = "The task is deleted"
	msgNoTasks       = "No tasks have been input"
	msgExiting       = "Tasklist exiting!"
)

const maxLineBytes = 1 << 20

// Store persists the task list when the session ends.
type Store interface {
	Save(tasks []*task.Task) error
}

// Options configures a Console. Zero fields get defaults: no input, output
// discarded, today's UTC date, no activity log, no logging.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Store    Store
	Today    func() date.Date
	Recorder activity.Recorder
	Logger   *log.Logger
}

// Console owns the task list for the duration of an interactive session.
type Console struct {
	list   *task.List
	in     *bufio.Scanner
	out    io.Writer
	store  Store
	today  func() date.Date
	rec    activity.Recorder
	logger *log.Logger
}

// New returns a Console over list.
func New(list *task.List, opts Options) *Console {
	c := &Console{
		list:   list,
		out:    opts.Out,
		store:  opts.Store,
		today:  opts.Today,
		rec:    opts.Recorder,
		logger: opts.Logger,
	}
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	c.in = bufio.NewScanner(in)
	c.in.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	if c.out == nil {
		c.out = io.Discard
	}
	if c.today == nil {
		c.today = date.Today
	}
	if c.rec == nil {
		c.rec = activity.Nop{}
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	return c
}

// List returns the session's task list.
func (c *Console) List() *task.List { return c.list }

// Run reads actions until end. It returns nil after the end action or at
// end of input, and an error only when the list cannot be saved, input
// cannot be read, or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := c.ask(promptAction)
		if err != nil {
			return c.stop(err)
		}

		action := strings.ToLower(line)
		if action == ActionEnd {
			return c.end()
		}

		err = c.dispatch(action)
		switch {
		case err == nil, errors.Is(err, ErrAborted):
		default:
			return c.stop(err)
		}
	}
}

func (c *Console) dispatch(action string) error {
	c.logger.Debug("action", "name", action)
	switch action {
	case ActionAdd:
		return c.add()
	case ActionPrint:
		c.print()
		return nil
	case ActionEdit:
		if !c.print() {
			return nil
		}
		return c.edit()
	case ActionDelete:
		if !c.print() {
			return nil
		}
		return c.delete()
	default:
		c.logger.Debug("rejected action", "code", clierr.InvalidAction, "err", invalidAction(action))
		c.say(msgInvalidAction)
		return nil
	}
}

// invalidAction describes an unknown menu action.
func invalidAction(action string) *clierr.Error {
	return clierr.Newf(clierr.InvalidAction, "invalid action %q", action).
		WithDetails(map[string]any{
			"action":  action,
			"allowed": []string{ActionAdd, ActionPrint, ActionEdit, ActionDelete, ActionEnd},
		})
}

// stop handles an error that ends the loop. End of input behaves like the
// end action; the partially entered task, if any, is dropped.
func (c *Console) stop(err error) error {
	if errors.Is(err, io.EOF) {
		c.logger.Debug("end of input")
		return c.end()
	}
	return err
}

func (c *Console) end() error {
	if !c.list.IsEmpty() && c.store != nil {
		if err := c.store.Save(c.list.Tasks()); err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}
		c.rec.Record(activity.ActionSave, 0, fmt.Sprintf("%d tasks", c.list.Len()))
	}
	c.say(msgExiting)
	return nil
}

// print shows the table and reports whether there was anything to show.
func (c *Console) print() bool {
	if c.list.IsEmpty() {
		c.say(msgNoTasks)
		return false
	}
	output.TaskTable(c.out, c.list.Entries())
	return true
}

func (c *Console) add() error {
	p, err := c.readPriority()
	if err != nil {
		return err
	}
	d, err := c.readDate()
	if err != nil {
		return err
	}
	tm, err := c.readTime()
	if err != nil {
		return err
	}
	// The due tag is taken before the description is entered.
	today := c.today()
	desc, err := c.readDescription()
	if err != nil {
		return err
	}

	t := task.New(p, d, tm, desc, today)
	n := c.list.Add(t)
	c.logger.Debug("task added", "number", n, "due", t.Due)
	c.rec.Record(activity.ActionAdd, n, t.Title())
	return nil
}

func (c *Console) edit() error {
	n, err := c.readNumber()
	if err != nil {
		return err
	}
	t, err := c.list.Get(n)
	if err != nil {
		return err
	}

	for {
		field, err := c.ask(promptField)
		if err != nil {
			return err
		}
		switch field {
		case task.FieldPriority:
			p, err := c.readPriority()
			if err != nil {
				return err
			}
			t.Priority = p
		case task.FieldDate:
			d, err := c.readDate()
			if err != nil {
				return err
			}
			t.SetDate(d, c.today())
		case task.FieldTime:
			tm, err := c.readTime()
			if err != nil {
				return err
			}
			t.Time = tm
		case task.FieldTask:
			desc, err := c.readDescription()
			if err != nil {
				return err
			}
			t.Description = desc
		default:
			c.logger.Debug("rejected field", "err", task.ValidateField(field))
			c.say(msgInvalidField)
			continue
		}
		c.say(msgChanged)
		c.rec.Record(activity.ActionEdit, n, field)
		return nil
	}
}

func (c *Console) delete() error {
	n, err := c.readNumber()
	if err != nil {
		return err
	}
	t, err := c.list.Remove(n)
	if err != nil {
		return err
	}
	c.say(msgDeleted)
	c.rec.Record(activity.ActionDelete, n, t.Title())
	return nil
}

// ask prints prompt and reads one line. It returns io.EOF when input is
// exhausted.
func (c *Console) ask(prompt string) (string, error) {
	c.say(prompt)
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	if c.in.Scan() {
		return c.in.Text(), nil
	}
	if err := c.in.Err(); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return "", io.EOF
}

func (c *Console) say(line string) {
	fmt.Fprintln(c.out, line)
}
