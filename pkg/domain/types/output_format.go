package types

import "fmt"

// OutputFormat selects how operation results are rendered
type OutputFormat string

const (
	OutputFormatMarkdown OutputFormat = "markdown"
	OutputFormatJSON     OutputFormat = "json"
)

// IsValid checks if the output format is valid
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatMarkdown, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// Normalize returns the format, treating empty as markdown
func (f OutputFormat) Normalize() OutputFormat {
	if f == "" {
		return OutputFormatMarkdown
	}
	return f
}

// String returns the string representation of the output format
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat parses a string into an OutputFormat. Empty input yields markdown.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(s).Normalize()
	if !f.IsValid() {
		return "", fmt.Errorf("invalid output format: %s", s)
	}
	return f, nil
}
