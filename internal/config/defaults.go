// Package config handles the optional tasklist configuration file.
package config

const (
	// DefaultDataFile is the task file used when neither flag nor config names one.
	DefaultDataFile = "tasklist.json"
	// DefaultLogLevel is the diagnostic level on stderr.
	DefaultLogLevel = "warn"
	// DefaultSort is the print command's default sort field.
	DefaultSort = "number"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 1
)

func boolPtr(b bool) *bool { return &b }
