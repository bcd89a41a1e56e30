package service

import (
	"context"

	"github.com/ludo-technologies/cmreport/domain"
	"github.com/ludo-technologies/cmreport/internal/extractor"
	"github.com/ludo-technologies/cmreport/internal/xmltree"
)

// ReportServiceImpl implements the ReportService interface
type ReportServiceImpl struct {
	progress domain.ProgressManager
}

// NewReportService creates a report service. A nil progress manager disables progress output.
func NewReportService(progress domain.ProgressManager) *ReportServiceImpl {
	if progress == nil {
		progress = NewNoOpProgressManager()
	}
	return &ReportServiceImpl{progress: progress}
}

// Extract parses the raw document and walks it into a report.
// source names the input in error messages.
func (s *ReportServiceImpl) Extract(ctx context.Context, source string, data []byte) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewInvalidInputError("extraction cancelled", err)
	}

	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, domain.NewMalformedXMLError(source, err)
	}

	s.progress.Start()
	ex := extractor.New(extractor.WithProgress(s.progress.Update))
	report, err := ex.Extract(doc)
	s.progress.Complete(err == nil)
	if err != nil {
		return nil, err
	}

	return report, nil
}
