package domain

import (
	"context"
	"io"
)

// MemberKind identifies the kind of a type member. Empty for assembly and type records.
type MemberKind string

const (
	MemberKindNone     MemberKind = ""
	MemberKindMethod   MemberKind = "Method"
	MemberKindField    MemberKind = "Field"
	MemberKindProperty MemberKind = "Property"
)

// ParseMemberKind maps an element tag to a member kind.
func ParseMemberKind(tag string) (MemberKind, bool) {
	switch tag {
	case string(MemberKindMethod):
		return MemberKindMethod, true
	case string(MemberKindField):
		return MemberKindField, true
	case string(MemberKindProperty):
		return MemberKindProperty, true
	default:
		return MemberKindNone, false
	}
}

// RecordCategory tells which extraction pass produced a record
type RecordCategory int

const (
	RecordAssembly RecordCategory = iota
	RecordType
	RecordMember
)

func (c RecordCategory) String() string {
	switch c {
	case RecordAssembly:
		return "assembly"
	case RecordType:
		return "type"
	case RecordMember:
		return "member"
	default:
		return "unknown"
	}
}

// MetricValues holds the five recognized metrics of a record
type MetricValues struct {
	MaintainabilityIndex int `json:"maintainability_index" yaml:"maintainability_index"`
	CyclomaticComplexity int `json:"cyclomatic_complexity" yaml:"cyclomatic_complexity"`
	SourceLines          int `json:"source_lines" yaml:"source_lines"`
	ExecutableLines      int `json:"executable_lines" yaml:"executable_lines"`
	ClassCoupling        int `json:"class_coupling" yaml:"class_coupling"`
}

// Value returns the value of the given metric kind, or 0 for unknown kinds.
func (m MetricValues) Value(kind MetricKind) int {
	switch kind {
	case MetricMaintainabilityIndex:
		return m.MaintainabilityIndex
	case MetricCyclomaticComplexity:
		return m.CyclomaticComplexity
	case MetricSourceLines:
		return m.SourceLines
	case MetricExecutableLines:
		return m.ExecutableLines
	case MetricClassCoupling:
		return m.ClassCoupling
	default:
		return 0
	}
}

// Set stores value under the given metric kind. It reports false for names
// outside the five recognized metrics.
func (m *MetricValues) Set(kind MetricKind, value int) bool {
	switch kind {
	case MetricMaintainabilityIndex:
		m.MaintainabilityIndex = value
	case MetricCyclomaticComplexity:
		m.CyclomaticComplexity = value
	case MetricSourceLines:
		m.SourceLines = value
	case MetricExecutableLines:
		m.ExecutableLines = value
	case MetricClassCoupling:
		m.ClassCoupling = value
	default:
		return false
	}
	return true
}

// MetricRecord is one measured unit: the assembly, a named type or a type member
type MetricRecord struct {
	Name      string         `json:"name" yaml:"name"`
	Container string         `json:"container" yaml:"container"`
	Kind      MemberKind     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Category  RecordCategory `json:"-" yaml:"-"`
	Metrics   MetricValues   `json:"metrics" yaml:"metrics"`
}

// FullName is Container.Name for types and members and Name for the assembly.
func (r MetricRecord) FullName() string {
	if r.Category == RecordAssembly {
		return r.Name
	}
	return r.Container + "." + r.Name
}

// AssemblyInfo is the display name and version split from the assembly Name attribute
type AssemblyInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// AssemblyMetric is a generic name/value pair from the assembly-level Metrics block
type AssemblyMetric struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// Report is everything extracted from one code metrics document
type Report struct {
	Assembly        AssemblyInfo     `json:"assembly" yaml:"assembly"`
	AssemblyMetrics []AssemblyMetric `json:"assembly_metrics" yaml:"assembly_metrics"`
	AssemblyRecord  MetricRecord     `json:"-" yaml:"-"`
	Types           []MetricRecord   `json:"types" yaml:"types"`
	Members         []MetricRecord   `json:"members" yaml:"members"`
}

// ConvertRequest represents a request to convert a metrics report
type ConvertRequest struct {
	InputPath  string
	OutputPath string

	// OutputFormat is resolved from OutputPath when empty
	OutputFormat OutputFormat

	// OpenBrowser opens HTML output in the default browser after writing
	OpenBrowser bool

	// ConfigPath is the configuration file used for this run, informational only
	ConfigPath string
}

// ReportService parses and extracts a metrics document
type ReportService interface {
	// Extract parses raw XML and builds the report
	Extract(ctx context.Context, source string, data []byte) (*Report, error)
}

// ReportFormatter renders an extracted report
type ReportFormatter interface {
	// Format renders the report in the given format
	Format(report *Report, format OutputFormat) (string, error)

	// Write renders the report and writes it to writer
	Write(report *Report, format OutputFormat, writer io.Writer) error
}

// FileReader reads input documents
type FileReader interface {
	// ReadFile reads the content of a file
	ReadFile(path string) ([]byte, error)

	// FileExists checks if a regular file exists
	FileExists(path string) (bool, error)
}
