// Package date provides a Date type that marshals as YYYY-MM-DD and a Clock
// type that marshals as hh:mm.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	dateFields = 3
	minYear    = 0
	maxYear    = 9999
	secsPerDay = 24 * 60 * 60
)

// ErrInvalidDate is returned (wrapped) for any input that is not a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Date represents a calendar date without time or timezone.
type Date struct {
	time.Time
}

// New creates a Date from year, month, day. Out-of-range values are
// normalized the way time.Date does; use Of to validate instead.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of validates year, month and day as a calendar date.
func Of(year, month, day int) (Date, error) {
	if year < minYear || year > maxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < int(time.January) || month > int(time.December) {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	d := New(year, time.Month(month), day)
	if day < 1 || d.Day() != day {
		return Date{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidDate, day, year, month)
	}
	return d, nil
}

// FromTime returns the UTC calendar date of t.
func FromTime(t time.Time) Date {
	t = t.UTC()
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns today's date in UTC.
func Today() Date {
	return FromTime(time.Now())
}

// Parse parses a yyyy-mm-dd string into a Date. The input is split on '-'
// and each of the first three fields must be an integer, so "2024-3-5" is
// accepted. Fields after the third are ignored.
func Parse(s string) (Date, error) {
	fields := strings.Split(s, "-")
	if len(fields) < dateFields {
		return Date{}, fmt.Errorf("%w %q: expected yyyy-mm-dd", ErrInvalidDate, s)
	}
	var parts [dateFields]int
	for i := range parts {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return Date{}, fmt.Errorf("%w %q: expected yyyy-mm-dd", ErrInvalidDate, s)
		}
		parts[i] = n
	}
	return Of(parts[0], parts[1], parts[2])
}

// DaysUntil returns the signed number of days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int((other.Unix() - d.Unix()) / secsPerDay)
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.v3 Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
