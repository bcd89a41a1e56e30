package service

import (
	"testing"

	"github.com/ludo-technologies/cmreport/domain"
	"github.com/stretchr/testify/assert"
)

func TestOutputFormatResolver_Resolve(t *testing.T) {
	resolver := NewOutputFormatResolver()

	tests := []struct {
		path string
		want domain.OutputFormat
	}{
		{"out.html", domain.OutputFormatHTML},
		{"out.HTML", domain.OutputFormatHTML},
		{"out.htm", domain.OutputFormatHTML},
		{"out.Htm", domain.OutputFormatHTML},
		{"/tmp/reports/metrics.xhtml", domain.OutputFormatCSV},
		{"out.csv", domain.OutputFormatCSV},
		{"out.txt", domain.OutputFormatCSV},
		{"out", domain.OutputFormatCSV},
		{"dir.html/out", domain.OutputFormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.path))
		})
	}
}
