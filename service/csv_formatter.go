package service

import (
	"strconv"
	"strings"

	"github.com/ludo-technologies/cmreport/domain"
)

// CSVDelimiter separates fields in every CSV section
const CSVDelimiter = ","

// CSV section labels written in the first column
const (
	csvSectionAssemblyInfo    = "Assembly Info"
	csvSectionAssemblyMetrics = "Assembly Metrics"
	csvSectionTypeMetrics     = "Type Metrics"
	csvSectionMemberMetrics   = "Member Metrics"
)

// metricColumnTitles are the headers of the five metric columns, in domain.MetricKinds order.
var metricColumnTitles = []string{
	"Maintainability",
	"Complexity",
	"ClassCoupling",
	"Lines of Code",
	"Lines of Executable Code",
}

// CSVFormatterImpl renders a report as four delimited sections, each with its own header row
type CSVFormatterImpl struct{}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter() *CSVFormatterImpl {
	return &CSVFormatterImpl{}
}

// Format renders the report. Names are always quoted; numbers never are.
func (f *CSVFormatterImpl) Format(report *domain.Report) (string, error) {
	if report == nil {
		return "", domain.NewOutputError("nothing to format", nil)
	}

	var b strings.Builder

	writeCSVRow(&b, "Section", "Assembly", "Version")
	writeCSVRow(&b, csvSectionAssemblyInfo, quoteCSVField(report.Assembly.Name), escapeCSVField(report.Assembly.Version))

	writeCSVRow(&b, "Section", "Metric Name", "Value")
	for _, m := range report.AssemblyMetrics {
		writeCSVRow(&b, csvSectionAssemblyMetrics, quoteCSVField(m.Name), strconv.Itoa(m.Value))
	}

	writeCSVRow(&b, append([]string{"Section", "Type"}, metricColumnTitles...)...)
	for _, r := range report.Types {
		writeCSVRow(&b, append([]string{csvSectionTypeMetrics, quoteCSVField(r.FullName())}, metricCells(r.Metrics)...)...)
	}

	writeCSVRow(&b, append([]string{"Section", "Member", "Kind", "Container"}, metricColumnTitles...)...)
	for _, r := range report.Members {
		row := []string{
			csvSectionMemberMetrics,
			quoteCSVField(r.Name),
			escapeCSVField(string(r.Kind)),
			quoteCSVField(r.Container),
		}
		writeCSVRow(&b, append(row, metricCells(r.Metrics)...)...)
	}

	return b.String(), nil
}

func metricCells(m domain.MetricValues) []string {
	cells := make([]string, 0, len(domain.MetricKinds))
	for _, kind := range domain.MetricKinds {
		cells = append(cells, strconv.Itoa(m.Value(kind)))
	}
	return cells
}

// writeCSVRow joins already-escaped fields.
func writeCSVRow(b *strings.Builder, fields ...string) {
	b.WriteString(strings.Join(fields, CSVDelimiter))
	b.WriteByte('\n')
}

// quoteCSVField always wraps s in double quotes, doubling embedded quotes.
func quoteCSVField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// escapeCSVField quotes s only when it contains the delimiter, a quote or a line break.
func escapeCSVField(s string) string {
	if strings.ContainsAny(s, CSVDelimiter+"\"\r\n") {
		return quoteCSVField(s)
	}
	return s
}
