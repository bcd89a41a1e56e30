package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ludo-technologies/cmreport/domain"
	"github.com/ludo-technologies/cmreport/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations
type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Extract(ctx context.Context, source string, data []byte) (*domain.Report, error) {
	args := m.Called(ctx, source, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

type mockFileReader struct {
	mock.Mock
}

func (m *mockFileReader) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockFileReader) FileExists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

type mockReportFormatter struct {
	mock.Mock
}

func (m *mockReportFormatter) Format(report *domain.Report, format domain.OutputFormat) (string, error) {
	args := m.Called(report, format)
	return args.String(0), args.Error(1)
}

func (m *mockReportFormatter) Write(report *domain.Report, format domain.OutputFormat, writer io.Writer) error {
	args := m.Called(report, format, writer)
	return args.Error(0)
}

type mockReportWriter struct {
	mock.Mock
}

func (m *mockReportWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, open bool, writeFunc func(io.Writer) error) error {
	args := m.Called(writer, outputPath, format, open, writeFunc)
	return args.Error(0)
}

// Helper functions
func absPath(t *testing.T, p string) string {
	t.Helper()
	abs, err := filepath.Abs(p)
	require.NoError(t, err)
	return abs
}

func testReport() *domain.Report {
	return &domain.Report{
		Assembly: domain.AssemblyInfo{Name: "App", Version: "1.0.0.0"},
		Types: []domain.MetricRecord{{
			Name:      "Widget",
			Container: "App",
			Category:  domain.RecordType,
			Metrics: domain.MetricValues{
				MaintainabilityIndex: 80,
				CyclomaticComplexity: 10,
				ClassCoupling:        5,
				SourceLines:          50,
				ExecutableLines:      40,
			},
		}},
		Members: []domain.MetricRecord{},
	}
}

func setupConvertUseCaseMocks(t *testing.T) (*ConvertUseCase, *mockReportService, *mockFileReader, *mockReportFormatter, *mockReportWriter) {
	svc := &mockReportService{}
	fileReader := &mockFileReader{}
	formatter := &mockReportFormatter{}
	writer := &mockReportWriter{}

	uc, err := NewConvertUseCaseBuilder().
		WithService(svc).
		WithFileReader(fileReader).
		WithFormatter(formatter).
		WithOutputWriter(writer).
		WithFormatResolver(service.NewOutputFormatResolver()).
		Build()
	require.NoError(t, err)

	return uc, svc, fileReader, formatter, writer
}

func TestConvertUseCase_Execute_Success(t *testing.T) {
	uc, svc, fileReader, formatter, writer := setupConvertUseCaseMocks(t)
	ctx := context.Background()
	report := testReport()
	input := absPath(t, "metrics.xml")
	output := absPath(t, "out.HTML")
	data := []byte("<CodeMetricsReport/>")

	fileReader.On("FileExists", input).Return(true, nil)
	fileReader.On("ReadFile", input).Return(data, nil)
	svc.On("Extract", ctx, input, data).Return(report, nil)
	formatter.On("Write", report, domain.OutputFormatHTML, mock.Anything).Return(nil)
	writer.On("Write", nil, output, domain.OutputFormatHTML, true, mock.Anything).
		Run(func(args mock.Arguments) {
			writeFunc := args.Get(4).(func(io.Writer) error)
			require.NoError(t, writeFunc(io.Discard))
		}).
		Return(nil)

	result, err := uc.ExecuteWithResult(ctx, domain.ConvertRequest{
		InputPath:   "metrics.xml",
		OutputPath:  "out.HTML",
		OpenBrowser: true,
	})

	require.NoError(t, err)
	assert.Equal(t, report, result.Report)
	assert.Equal(t, input, result.InputPath)
	assert.Equal(t, output, result.OutputPath)
	assert.Equal(t, domain.OutputFormatHTML, result.Format)

	svc.AssertExpectations(t)
	fileReader.AssertExpectations(t)
	formatter.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func TestConvertUseCase_Execute_ExplicitFormatWins(t *testing.T) {
	uc, svc, fileReader, _, writer := setupConvertUseCaseMocks(t)
	ctx := context.Background()
	input := absPath(t, "metrics.xml")

	fileReader.On("FileExists", input).Return(true, nil)
	fileReader.On("ReadFile", input).Return([]byte("x"), nil)
	svc.On("Extract", ctx, input, []byte("x")).Return(testReport(), nil)
	writer.On("Write", nil, absPath(t, "out.html"), domain.OutputFormatCSV, false, mock.Anything).Return(nil)

	err := uc.Execute(ctx, domain.ConvertRequest{
		InputPath:    "metrics.xml",
		OutputPath:   "out.html",
		OutputFormat: domain.OutputFormatCSV,
	})

	require.NoError(t, err)
	writer.AssertExpectations(t)
}

func TestConvertUseCase_Execute_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  domain.ConvertRequest
	}{
		{"missing input", domain.ConvertRequest{OutputPath: "out.csv"}},
		{"missing output", domain.ConvertRequest{InputPath: "in.xml"}},
		{"bad format", domain.ConvertRequest{InputPath: "in.xml", OutputPath: "out", OutputFormat: "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, fileReader, _, writer := setupConvertUseCaseMocks(t)

			err := uc.Execute(context.Background(), tt.req)

			require.Error(t, err)
			assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidInput))
			fileReader.AssertNotCalled(t, "FileExists", mock.Anything)
			writer.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestConvertUseCase_Execute_InputMissing(t *testing.T) {
	uc, _, fileReader, _, writer := setupConvertUseCaseMocks(t)
	input := absPath(t, "missing.xml")

	fileReader.On("FileExists", input).Return(false, nil)

	err := uc.Execute(context.Background(), domain.ConvertRequest{InputPath: "missing.xml", OutputPath: "out.csv"})

	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeFileNotFound))
	assert.Contains(t, err.Error(), input)
	fileReader.AssertNotCalled(t, "ReadFile", mock.Anything)
	writer.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConvertUseCase_Execute_ExtractionErrorPassesThrough(t *testing.T) {
	uc, svc, fileReader, _, writer := setupConvertUseCaseMocks(t)
	ctx := context.Background()
	input := absPath(t, "metrics.xml")
	extractErr := domain.NewMalformedMetricError("SourceLines", "abc", errors.New("invalid syntax"))

	fileReader.On("FileExists", input).Return(true, nil)
	fileReader.On("ReadFile", input).Return([]byte("x"), nil)
	svc.On("Extract", ctx, input, []byte("x")).Return(nil, extractErr)

	err := uc.Execute(ctx, domain.ConvertRequest{InputPath: "metrics.xml", OutputPath: "out.csv"})

	require.Error(t, err)
	assert.Equal(t, domain.ErrCodeMalformedMetric, domain.ErrorCode(err))
	writer.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConvertUseCase_Extract(t *testing.T) {
	uc, svc, fileReader, _, _ := setupConvertUseCaseMocks(t)
	ctx := context.Background()
	input := absPath(t, "metrics.xml")

	fileReader.On("FileExists", input).Return(true, nil)
	fileReader.On("ReadFile", input).Return([]byte("x"), nil)
	svc.On("Extract", ctx, input, []byte("x")).Return(testReport(), nil)

	report, err := uc.Extract(ctx, "metrics.xml")
	require.NoError(t, err)
	assert.Equal(t, "App", report.Assembly.Name)

	_, err = uc.Extract(ctx, "")
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidInput))
}

func TestConvertUseCaseBuilder_MissingDependencies(t *testing.T) {
	tests := []struct {
		name    string
		builder *ConvertUseCaseBuilder
		wantErr string
	}{
		{"no service", NewConvertUseCaseBuilder(), "report service is required"},
		{"no file reader", NewConvertUseCaseBuilder().WithService(&mockReportService{}), "file reader is required"},
		{
			"no formatter",
			NewConvertUseCaseBuilder().WithService(&mockReportService{}).WithFileReader(&mockFileReader{}),
			"report formatter is required",
		},
		{
			"no writer",
			NewConvertUseCaseBuilder().WithService(&mockReportService{}).WithFileReader(&mockFileReader{}).
				WithFormatter(&mockReportFormatter{}),
			"output writer is required",
		},
		{
			"no resolver",
			NewConvertUseCaseBuilder().WithService(&mockReportService{}).WithFileReader(&mockFileReader{}).
				WithFormatter(&mockReportFormatter{}).WithOutputWriter(&mockReportWriter{}),
			"format resolver is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := tt.builder.Build()
			assert.Nil(t, uc)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

// newRealUseCase wires the production collaborators
func newRealUseCase(t *testing.T) *ConvertUseCase {
	uc, err := NewConvertUseCaseBuilder().
		WithService(service.NewReportService(nil)).
		WithFileReader(service.NewFileReader()).
		WithFormatter(service.NewReportFormatter(nil)).
		WithOutputWriter(service.NewFileOutputWriter(io.Discard)).
		WithFormatResolver(service.NewOutputFormatResolver()).
		Build()
	require.NoError(t, err)
	return uc
}

func TestConvertUseCase_EndToEnd(t *testing.T) {
	uc := newRealUseCase(t)
	input := filepath.Join("..", "testdata", "reports", "sample.xml")
	dir := t.TempDir()

	t.Run("csv", func(t *testing.T) {
		output := filepath.Join(dir, "sample.csv")
		require.NoError(t, uc.Execute(context.Background(), domain.ConvertRequest{InputPath: input, OutputPath: output}))

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "Section,Assembly,Version\nAssembly Info,\"Contoso.Billing\",2.4.1.0\n"))
		assert.Contains(t, string(content), `Type Metrics,"Contoso.Billing.Invoice",80,10,5,50,40`)
	})

	t.Run("html", func(t *testing.T) {
		output := filepath.Join(dir, "sample.Htm")
		require.NoError(t, uc.Execute(context.Background(), domain.ConvertRequest{InputPath: input, OutputPath: output}))

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(content), "<td><code>Contoso.Billing.LegacyLedger&lt;T&gt;</code></td>")
		assert.Contains(t, string(content), "<p>SourceLines: <code>12,345</code></p>")
	})

	t.Run("idempotent", func(t *testing.T) {
		output := filepath.Join(dir, "twice.csv")
		req := domain.ConvertRequest{InputPath: input, OutputPath: output}

		require.NoError(t, uc.Execute(context.Background(), req))
		first, err := os.ReadFile(output)
		require.NoError(t, err)
		require.NoError(t, uc.Execute(context.Background(), req))
		second, err := os.ReadFile(output)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestConvertUseCase_MalformedMetricWritesNothing(t *testing.T) {
	uc := newRealUseCase(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.xml")
	output := filepath.Join(dir, "bad.csv")

	doc := `<CodeMetricsReport><Targets><Target><Assembly Name="App, Version=1.0.0.0">
  <Metrics><Metric Name="MaintainabilityIndex" Value="80" /></Metrics>
  <Namespaces><Namespace Name="App"><Types><NamedType Name="Widget">
    <Metrics><Metric Name="SourceLines" Value="fifty" /></Metrics>
  </NamedType></Types></Namespace></Namespaces>
</Assembly></Target></Targets></CodeMetricsReport>`
	require.NoError(t, os.WriteFile(input, []byte(doc), 0o644))

	err := uc.Execute(context.Background(), domain.ConvertRequest{InputPath: input, OutputPath: output})

	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeMalformedMetric))
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}
