package service

import (
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/cmreport/domain"
)

// OutputFormatResolver picks the output format from the output file name.
type OutputFormatResolver struct{}

func NewOutputFormatResolver() *OutputFormatResolver { return &OutputFormatResolver{} }

// Resolve returns HTML when the extension starts with ".htm" in any case,
// so ".htm", ".html" and ".HTML" all qualify. Everything else, including
// a path without extension, is CSV.
func (r *OutputFormatResolver) Resolve(path string) domain.OutputFormat {
	ext := strings.ToLower(filepath.Ext(path))
	if strings.HasPrefix(ext, ".htm") {
		return domain.OutputFormatHTML
	}
	return domain.OutputFormatCSV
}
