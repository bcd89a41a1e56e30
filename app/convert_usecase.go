package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ludo-technologies/cmreport/domain"
)

// ConvertResult describes a finished conversion
type ConvertResult struct {
	Report     *domain.Report
	InputPath  string
	OutputPath string
	Format     domain.OutputFormat
}

// ConvertUseCase orchestrates read -> extract -> render -> write
type ConvertUseCase struct {
	service    domain.ReportService
	fileReader domain.FileReader
	formatter  domain.ReportFormatter
	writer     domain.ReportWriter
	resolver   domain.FormatResolver
}

// NewConvertUseCase creates a new convert use case
func NewConvertUseCase(
	service domain.ReportService,
	fileReader domain.FileReader,
	formatter domain.ReportFormatter,
	writer domain.ReportWriter,
	resolver domain.FormatResolver,
) *ConvertUseCase {
	return &ConvertUseCase{
		service:    service,
		fileReader: fileReader,
		formatter:  formatter,
		writer:     writer,
		resolver:   resolver,
	}
}

// Execute converts the input report and writes the output file
func (uc *ConvertUseCase) Execute(ctx context.Context, req domain.ConvertRequest) error {
	_, err := uc.ExecuteWithResult(ctx, req)
	return err
}

// ExecuteWithResult converts like Execute and also returns the extracted report.
// Nothing is written unless extraction and rendering both succeed.
func (uc *ConvertUseCase) ExecuteWithResult(ctx context.Context, req domain.ConvertRequest) (*ConvertResult, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	outputPath, err := filepath.Abs(req.OutputPath)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("cannot resolve output path: %s", req.OutputPath), err)
	}

	inputPath, report, err := uc.extract(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}

	format := req.OutputFormat
	if format == "" {
		format = uc.resolver.Resolve(outputPath)
	}

	err = uc.writer.Write(nil, outputPath, format, req.OpenBrowser, func(w io.Writer) error {
		return uc.formatter.Write(report, format, w)
	})
	if err != nil {
		return nil, err
	}

	return &ConvertResult{
		Report:     report,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Format:     format,
	}, nil
}

// Extract reads and extracts a report without rendering it
func (uc *ConvertUseCase) Extract(ctx context.Context, inputPath string) (*domain.Report, error) {
	if inputPath == "" {
		return nil, domain.NewInvalidInputError("input path is required", nil)
	}
	_, report, err := uc.extract(ctx, inputPath)
	return report, err
}

func (uc *ConvertUseCase) extract(ctx context.Context, inputPath string) (string, *domain.Report, error) {
	absPath, err := filepath.Abs(inputPath)
	if err != nil {
		return "", nil, domain.NewInvalidInputError(fmt.Sprintf("cannot resolve input path: %s", inputPath), err)
	}

	exists, err := uc.fileReader.FileExists(absPath)
	if err != nil {
		return "", nil, domain.NewInvalidInputError(fmt.Sprintf("cannot access input file: %s", absPath), err)
	}
	if !exists {
		return "", nil, domain.NewFileNotFoundError(absPath, nil)
	}

	data, err := uc.fileReader.ReadFile(absPath)
	if err != nil {
		return "", nil, err
	}

	report, err := uc.service.Extract(ctx, absPath, data)
	if err != nil {
		return "", nil, err
	}

	return absPath, report, nil
}

// validateRequest validates the convert request
func (uc *ConvertUseCase) validateRequest(req domain.ConvertRequest) error {
	if req.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if req.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}

	switch req.OutputFormat {
	case "", domain.OutputFormatCSV, domain.OutputFormatHTML:
	default:
		return fmt.Errorf("unsupported output format: %s", req.OutputFormat)
	}

	return nil
}

// ConvertUseCaseBuilder provides a builder pattern for creating ConvertUseCase
type ConvertUseCaseBuilder struct {
	service    domain.ReportService
	fileReader domain.FileReader
	formatter  domain.ReportFormatter
	writer     domain.ReportWriter
	resolver   domain.FormatResolver
}

// NewConvertUseCaseBuilder creates a new builder
func NewConvertUseCaseBuilder() *ConvertUseCaseBuilder {
	return &ConvertUseCaseBuilder{}
}

// WithService sets the report service
func (b *ConvertUseCaseBuilder) WithService(service domain.ReportService) *ConvertUseCaseBuilder {
	b.service = service
	return b
}

// WithFileReader sets the file reader
func (b *ConvertUseCaseBuilder) WithFileReader(fileReader domain.FileReader) *ConvertUseCaseBuilder {
	b.fileReader = fileReader
	return b
}

// WithFormatter sets the report formatter
func (b *ConvertUseCaseBuilder) WithFormatter(formatter domain.ReportFormatter) *ConvertUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithOutputWriter sets the report writer
func (b *ConvertUseCaseBuilder) WithOutputWriter(writer domain.ReportWriter) *ConvertUseCaseBuilder {
	b.writer = writer
	return b
}

// WithFormatResolver sets the output format resolver
func (b *ConvertUseCaseBuilder) WithFormatResolver(resolver domain.FormatResolver) *ConvertUseCaseBuilder {
	b.resolver = resolver
	return b
}

// Build creates the ConvertUseCase with the configured dependencies
func (b *ConvertUseCaseBuilder) Build() (*ConvertUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("report service is required")
	}
	if b.fileReader == nil {
		return nil, fmt.Errorf("file reader is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("report formatter is required")
	}
	if b.writer == nil {
		return nil, fmt.Errorf("output writer is required")
	}
	if b.resolver == nil {
		return nil, fmt.Errorf("format resolver is required")
	}

	return NewConvertUseCase(b.service, b.fileReader, b.formatter, b.writer, b.resolver), nil
}
