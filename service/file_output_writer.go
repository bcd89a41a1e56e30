package service

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/cmreport/domain"
)

// FileOutputWriter writes reports to files or provided writers and optionally opens HTML in a browser.
type FileOutputWriter struct {
	status io.Writer // where to print status messages (typically stdout)
	opener func(url string) error
	perm   os.FileMode
}

// NewFileOutputWriter creates a new FileOutputWriter.
func NewFileOutputWriter(status io.Writer) *FileOutputWriter {
	if status == nil {
		status = os.Stdout
	}
	return &FileOutputWriter{status: status, opener: OpenBrowser, perm: 0o644}
}

// WithOpener replaces the browser opener.
func (w *FileOutputWriter) WithOpener(opener func(url string) error) *FileOutputWriter {
	w.opener = opener
	return w
}

// Write implements domain.ReportWriter.
func (w *FileOutputWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, open bool, writeFunc func(io.Writer) error) error {
	if outputPath == "" {
		if err := writeFunc(writer); err != nil {
			return domain.NewOutputError("failed to write output", err)
		}
		return nil
	}

	// Render fully before touching the file system.
	var buf bytes.Buffer
	if err := writeFunc(&buf); err != nil {
		return domain.NewOutputError("failed to render output", err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		absPath = outputPath
	}

	if err := os.WriteFile(absPath, buf.Bytes(), w.perm); err != nil {
		return domain.NewOutputError(fmt.Sprintf("failed to write output file: %s", absPath), err)
	}

	fmt.Fprintf(w.status, "Saved: %s\n", absPath)

	if open && format == domain.OutputFormatHTML && w.opener != nil {
		if err := w.opener("file://" + filepath.ToSlash(absPath)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not open browser: %v\n", err)
		}
	}

	return nil
}
