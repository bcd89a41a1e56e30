package service

import (
	"io"

	"github.com/ludo-technologies/cmreport/domain"
)

// ReportFormatterImpl implements the ReportFormatter interface
type ReportFormatterImpl struct {
	csv  *CSVFormatterImpl
	html *HTMLFormatterImpl
}

// NewReportFormatter creates a formatter for every supported output format.
// A nil template uses the default HTML shell.
func NewReportFormatter(template *HTMLTemplate) *ReportFormatterImpl {
	return &ReportFormatterImpl{
		csv:  NewCSVFormatter(),
		html: NewHTMLFormatter(template),
	}
}

// Format renders the report according to the specified format
func (f *ReportFormatterImpl) Format(report *domain.Report, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatCSV:
		return f.csv.Format(report)
	case domain.OutputFormatHTML:
		return f.html.Format(report)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write writes the formatted output to the writer
func (f *ReportFormatterImpl) Write(report *domain.Report, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(report, format)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(writer, output); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	return nil
}
