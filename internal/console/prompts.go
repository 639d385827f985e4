package console

import (
	"fmt"
	"strings"

	"github.com/twiced-technology-gmbh/tasklist/internal/date"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// readPriority re-prompts without a message until a valid letter is given.
func (c *Console) readPriority() (task.Priority, error) {
	for {
		line, err := c.ask(promptPriority)
		if err != nil {
			return 0, err
		}
		p, err := task.ParsePriority(line)
		if err == nil {
			return p, nil
		}
		c.logger.Debug("rejected priority", "err", err)
	}
}

func (c *Console) readDate() (date.Date, error) {
	for {
		line, err := c.ask(promptDate)
		if err != nil {
			return date.Date{}, err
		}
		d, err := date.Parse(line)
		if err == nil {
			return d, nil
		}
		c.logger.Debug("rejected date", "err", task.ValidateDate(line, err))
		c.say(msgInvalidDate)
	}
}

func (c *Console) readTime() (date.Clock, error) {
	for {
		line, err := c.ask(promptTime)
		if err != nil {
			return date.Clock{}, err
		}
		tm, err := date.ParseClock(line)
		if err == nil {
			return tm, nil
		}
		c.logger.Debug("rejected time", "err", task.ValidateTime(line, err))
		c.say(msgInvalidTime)
	}
}

// readDescription reads the main line and sub-items up to a blank line.
// A blank main line prints a message and returns ErrAborted.
func (c *Console) readDescription() ([]string, error) {
	c.say(promptDescription)
	first, err := c.readLine()
	if err != nil {
		return nil, err
	}
	first = strings.TrimSpace(first)
	if first == "" {
		c.say(msgBlankTask)
		return nil, fmt.Errorf("%w: %w", ErrAborted, task.BlankDescription())
	}

	lines := []string{first}
	for {
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// readNumber prompts until a position in [1, Len()] is given.
func (c *Console) readNumber() (int, error) {
	for {
		line, err := c.ask(fmt.Sprintf(promptNumberFmt, c.list.Len()))
		if err != nil {
			return 0, err
		}
		n, err := c.list.ParseNumber(line)
		if err == nil {
			return n, nil
		}
		c.logger.Debug("rejected task number", "err", err)
		c.say(msgInvalidNumber)
	}
}
