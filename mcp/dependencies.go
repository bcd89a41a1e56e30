package mcp

import (
	"io"

	"github.com/ludo-technologies/cmreport/app"
	"github.com/ludo-technologies/cmreport/domain"
	"github.com/ludo-technologies/cmreport/internal/config"
	"github.com/ludo-technologies/cmreport/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	fileReader domain.FileReader
	config     *config.Config
	configPath string
}

// NewDependencies constructs the dependency set. A nil config is loaded
// per request, starting the search from the input file's directory.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	return &Dependencies{
		fileReader: service.NewFileReader(),
		config:     cfg,
		configPath: configPath,
	}
}

// Config exposes the fixed configuration snapshot, if any.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty to trigger discovery).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}

// ResolveConfig returns the fixed config or loads one for inputPath.
func (d *Dependencies) ResolveConfig(inputPath string) (*config.Config, error) {
	if d.config != nil {
		return d.config, nil
	}
	cfg, _, err := service.NewConfigurationLoader(nil).Load(d.configPath, inputPath, service.FlagOverrides{})
	return cfg, err
}

// BuildConvertUseCase assembles a fresh ConvertUseCase. Nothing is written to
// stdout since it carries the JSON-RPC stream.
func (d *Dependencies) BuildConvertUseCase(cfg *config.Config) (*app.ConvertUseCase, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	template := service.NewHTMLTemplate(cfg.Output.Title, cfg.Output.Stylesheet)

	return app.NewConvertUseCaseBuilder().
		WithService(service.NewReportService(service.NewNoOpProgressManager())).
		WithFileReader(d.fileReader).
		WithFormatter(service.NewReportFormatter(template)).
		WithOutputWriter(service.NewFileOutputWriter(io.Discard)).
		WithFormatResolver(service.NewOutputFormatResolver()).
		Build()
}
