package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdgclone/pdgclone/domain"
	"gopkg.in/yaml.v3"
)

// EncodeJSON returns an indented JSON string for the given value.
func EncodeJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to marshal JSON", err)
	}
	return string(data), nil
}

// WriteJSON writes indented JSON for the given value to the writer.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

// EncodeYAML returns a YAML string for the given value.
func EncodeYAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", domain.NewOutputError("failed to marshal YAML", err)
	}
	return string(data), nil
}

// WriteYAML writes YAML for the given value to the writer.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}

// Standard formatting constants for the text report.
const (
	HeaderWidth    = 40
	LabelWidth     = 25
	SectionPadding = 2
)

// FormatUtils provides shared text-report formatting helpers.
type FormatUtils struct{}

// NewFormatUtils creates a new format utilities instance.
func NewFormatUtils() *FormatUtils {
	return &FormatUtils{}
}

// FormatMainHeader creates a standardized main header.
func (f *FormatUtils) FormatMainHeader(title string) string {
	var builder strings.Builder
	builder.WriteString(title + "\n")
	builder.WriteString(strings.Repeat("=", HeaderWidth) + "\n\n")
	return builder.String()
}

// FormatSectionHeader creates a standardized section header.
func (f *FormatUtils) FormatSectionHeader(title string) string {
	var builder strings.Builder
	builder.WriteString(strings.ToUpper(title) + "\n")
	builder.WriteString(strings.Repeat("-", len(title)) + "\n")
	return builder.String()
}

// FormatSectionSeparator creates a section separator.
func (f *FormatUtils) FormatSectionSeparator() string {
	return "\n"
}

// FormatLabel creates a consistently formatted label with right alignment.
func (f *FormatUtils) FormatLabel(label string, value interface{}) string {
	padding := LabelWidth - len(label)
	if padding < 0 {
		padding = 0
	}
	return fmt.Sprintf("%s%s: %v\n", strings.Repeat(" ", padding), label, value)
}

// FormatLabelWithIndent creates a formatted label with specific indentation.
func (f *FormatUtils) FormatLabelWithIndent(indent int, label string, value interface{}) string {
	return fmt.Sprintf("%s%s: %v\n", strings.Repeat(" ", indent), label, value)
}

// FormatPercentage formats a percentage value consistently.
func (f *FormatUtils) FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
