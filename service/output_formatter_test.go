package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ludo-technologies/cmreport/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFormatter_Format(t *testing.T) {
	formatter := NewReportFormatter(nil)
	report := newTestReport()

	tests := []struct {
		name     string
		format   domain.OutputFormat
		contains string
		wantCode string
	}{
		{name: "csv", format: domain.OutputFormatCSV, contains: `Type Metrics,"App.Widget",80,10,5,50,40`},
		{name: "html", format: domain.OutputFormatHTML, contains: "<h3>Metrics by Type</h3>"},
		{name: "unsupported", format: domain.OutputFormat("json"), wantCode: domain.ErrCodeUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := formatter.Format(report, tt.format)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, domain.HasCode(err, tt.wantCode))
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestReportFormatter_Write(t *testing.T) {
	formatter := NewReportFormatter(NewHTMLTemplate("Custom", ""))

	var buf bytes.Buffer
	require.NoError(t, formatter.Write(newTestReport(), domain.OutputFormatHTML, &buf))
	assert.Contains(t, buf.String(), "<title>Custom</title>")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReportFormatter_WriteError(t *testing.T) {
	err := NewReportFormatter(nil).Write(newTestReport(), domain.OutputFormatCSV, failingWriter{})
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeOutputError))
}
