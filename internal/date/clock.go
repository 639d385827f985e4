package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	clockFields = 2
	hoursPerDay = 24
	minsPerHour = 60
)

// ErrInvalidTime is returned (wrapped) for any input that is not a wall-clock time.
var ErrInvalidTime = errors.New("invalid time")

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	hour, minute int
}

// NewClock validates hour (0-23) and minute (0-59).
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour >= hoursPerDay {
		return Clock{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidTime, hour)
	}
	if minute < 0 || minute >= minsPerHour {
		return Clock{}, fmt.Errorf("%w: minute %d out of range", ErrInvalidTime, minute)
	}
	return Clock{hour: hour, minute: minute}, nil
}

// ParseClock parses an hh:mm string. The input is split on ':' and the first
// two fields must be integers; "9:5" is accepted. Fields after the second are
// ignored.
func ParseClock(s string) (Clock, error) {
	fields := strings.Split(s, ":")
	if len(fields) < clockFields {
		return Clock{}, fmt.Errorf("%w %q: expected hh:mm", ErrInvalidTime, s)
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return Clock{}, fmt.Errorf("%w %q: expected hh:mm", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(fields[1])
	if err != nil {
		return Clock{}, fmt.Errorf("%w %q: expected hh:mm", ErrInvalidTime, s)
	}
	return NewClock(hour, minute)
}

// Hour returns the hour of the day (0-23).
func (c Clock) Hour() int { return c.hour }

// Minute returns the minute of the hour (0-59).
func (c Clock) Minute() int { return c.minute }

// Before reports whether c is earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	return c.hour*minsPerHour+c.minute < other.hour*minsPerHour+other.minute
}

// String returns the time as hh:mm.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// MarshalYAML implements yaml.Marshaler.
func (c Clock) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.v3 Unmarshaler.
func (c *Clock) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseClock(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
