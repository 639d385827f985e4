// Package output renders tasks as the fixed-width table, JSON, compact
// lines, or styled detail views.
package output

import (
	"fmt"
	"os"
	"strings"
)

// EnvFormat names the environment variable that picks a default format.
const EnvFormat = "TASKLIST_OUTPUT"

// Format represents an output format.
type Format int

const (
	// FormatTable is the fixed-width task table, also used by the menu.
	FormatTable Format = iota
	// FormatJSON outputs JSON.
	FormatJSON
	// FormatCompact outputs one line per record.
	FormatCompact
)

var formatNames = map[Format]string{
	FormatTable:   "table",
	FormatJSON:    "json",
	FormatCompact: "compact",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name to a Format. "oneline" is accepted for
// compact.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "compact", "oneline":
		return FormatCompact, nil
	}
	return FormatTable, fmt.Errorf("unknown output format %q", s)
}

// FromEnv returns the format named by EnvFormat, or FormatTable when the
// variable is unset or unrecognized.
func FromEnv() Format {
	f, err := ParseFormat(os.Getenv(EnvFormat))
	if err != nil {
		return FormatTable
	}
	return f
}

// Detect picks the output format. Flags win over the environment.
func Detect(jsonFlag, compactFlag bool) Format {
	switch {
	case jsonFlag:
		return FormatJSON
	case compactFlag:
		return FormatCompact
	}
	return FromEnv()
}
