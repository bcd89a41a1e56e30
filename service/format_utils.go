package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ludo-technologies/cmreport/domain"
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

var htmlTextReplacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"\r", "",
	"\n", "<br>",
)

// EscapeHTML prepares free text for insertion into HTML content.
func EscapeHTML(s string) string {
	return htmlTextReplacer.Replace(s)
}

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber formats n with thousands grouping, e.g. 12,345.
func FormatNumber(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// Standard formatting constants
const (
	HeaderWidth    = 40
	LabelWidth     = 25
	SectionPadding = 2
)

// ANSI color codes for consistent color usage
const (
	ColorReset  = "\x1b[0m"
	ColorRed    = "\x1b[31m"
	ColorYellow = "\x1b[33m"
	ColorGreen  = "\x1b[32m"
)

// FormatUtils provides shared console formatting utilities
type FormatUtils struct {
	color bool
}

// NewFormatUtils creates a new format utilities instance
func NewFormatUtils(color bool) *FormatUtils {
	return &FormatUtils{color: color}
}

// FormatMainHeader creates a standardized main header
func (f *FormatUtils) FormatMainHeader(title string) string {
	return title + "\n" + strings.Repeat("=", HeaderWidth) + "\n\n"
}

// FormatSectionHeader creates a standardized section header
func (f *FormatUtils) FormatSectionHeader(title string) string {
	return strings.ToUpper(title) + "\n" + strings.Repeat("-", len(title)) + "\n"
}

// FormatSectionSeparator creates a section separator
func (f *FormatUtils) FormatSectionSeparator() string {
	return "\n"
}

// FormatLabelWithIndent creates a formatted label with specific indentation
func (f *FormatUtils) FormatLabelWithIndent(indent int, label string, value interface{}) string {
	return fmt.Sprintf("%s%s: %v\n", strings.Repeat(" ", indent), label, value)
}

// FormatSeverity renders a severity band, coloured when enabled
func (f *FormatUtils) FormatSeverity(s domain.Severity) string {
	if !f.color {
		return string(s)
	}
	var color string
	switch s {
	case domain.SeverityBad:
		color = ColorRed
	case domain.SeverityWarn:
		color = ColorYellow
	default:
		color = ColorGreen
	}
	return color + string(s) + ColorReset
}
