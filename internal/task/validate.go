package task

import (
	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
)

// ValidatePriority returns a CLIError for an unrecognized priority.
func ValidatePriority(input string) *clierr.Error {
	return clierr.Newf(clierr.InvalidPriority, "invalid priority %q", input).
		WithDetails(map[string]any{
			"input":   input,
			"allowed": []string{"C", "H", "N", "L"},
		})
}

// ValidateDueTag returns a CLIError for an unrecognized due tag.
func ValidateDueTag(input string) *clierr.Error {
	return clierr.Newf(clierr.InvalidInput, "invalid due tag %q", input).
		WithDetails(map[string]any{
			"input":   input,
			"allowed": []string{"overdue", "today", "in-time"},
		})
}

// ValidateDate returns a CLIError for invalid date input.
func ValidateDate(input string, err error) *clierr.Error {
	return clierr.Wrap(clierr.InvalidDate, "invalid date", err).
		WithDetails(map[string]any{"input": input})
}

// ValidateTime returns a CLIError for invalid time input.
func ValidateTime(input string, err error) *clierr.Error {
	return clierr.Wrap(clierr.InvalidTime, "invalid time", err).
		WithDetails(map[string]any{"input": input})
}

// ValidateTaskNumber returns a CLIError for a task number that is not an
// integer in [1, size].
func ValidateTaskNumber(input string, size int) *clierr.Error {
	return clierr.Newf(clierr.InvalidTaskNumber, "invalid task number %q (1-%d)", input, size).
		WithDetails(map[string]any{
			"input": input,
			"size":  size,
		})
}

// ValidateField returns a CLIError for an unknown editable field.
func ValidateField(name string) *clierr.Error {
	return clierr.Newf(clierr.InvalidField, "invalid field %q", name).
		WithDetails(map[string]any{
			"field":   name,
			"allowed": EditableFields(),
		})
}

// BlankDescription returns a CLIError for an empty main description line.
func BlankDescription() *clierr.Error {
	return clierr.New(clierr.BlankTask, "task description is blank")
}
