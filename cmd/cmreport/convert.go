package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ludo-technologies/cmreport/app"
	"github.com/ludo-technologies/cmreport/domain"
	"github.com/ludo-technologies/cmreport/internal/config"
	"github.com/ludo-technologies/cmreport/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// usageMessage is printed when fewer than two arguments are given
const usageMessage = "Usage: cmreport <input.xml> <output.csv|output.html>"

// maxVerboseHotspots bounds the hotspot list printed in verbose mode
const maxVerboseHotspots = 10

// ConvertCommand represents the root conversion command
type ConvertCommand struct {
	configPath string
	title      string
	open       bool
	noProgress bool
	verbose    bool
}

// NewConvertCommand creates a new convert command
func NewConvertCommand() *ConvertCommand {
	return &ConvertCommand{}
}

// AddFlags registers the conversion flags on cmd
func (c *ConvertCommand) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVar(&c.title, config.FlagTitle, config.DefaultHTMLTitle, "HTML document title")
	cmd.Flags().BoolVar(&c.open, config.FlagOpen, false, "Open HTML output in the default browser")
	cmd.Flags().BoolVar(&c.noProgress, config.FlagNoProgress, false, "Disable the progress bar")
}

// Run converts args[0] into args[1]
func (c *ConvertCommand) Run(cmd *cobra.Command, args []string) error {
	c.verbose, _ = cmd.Flags().GetBool("verbose")

	if len(args) < 2 {
		fmt.Fprintln(cmd.OutOrStdout(), usageMessage)
		return nil
	}
	inputPath, outputPath := args[0], args[1]

	loader := service.NewConfigurationLoader(GetExplicitFlags(cmd))
	cfg, sources, err := loader.Load(c.configPath, inputPath, service.FlagOverrides{
		Title:      c.title,
		Open:       c.open,
		NoProgress: c.noProgress,
	})
	if err != nil {
		return c.reportError(cmd, err)
	}

	if c.verbose {
		for _, src := range sources {
			fmt.Fprintf(cmd.ErrOrStderr(), "Using configuration: %s\n", src)
		}
	}

	useCase, err := c.buildUseCase(cmd, cfg)
	if err != nil {
		return c.reportError(cmd, err)
	}

	result, err := useCase.ExecuteWithResult(cmd.Context(), domain.ConvertRequest{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		OpenBrowser: cfg.Output.OpenBrowser,
		ConfigPath:  c.configPath,
	})
	if err != nil {
		return c.reportError(cmd, err)
	}

	if c.verbose {
		summary := service.Summarize(result.Report, maxVerboseHotspots)
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s", service.NewSummaryFormatter(isTerminal(cmd.ErrOrStderr())).Format(summary))
	}

	return nil
}

func (c *ConvertCommand) buildUseCase(cmd *cobra.Command, cfg *config.Config) (*app.ConvertUseCase, error) {
	progress := service.NewNoOpProgressManager()
	if cfg.Output.ShowProgress {
		progress = service.NewProgressManager()
		progress.SetWriter(cmd.ErrOrStderr())
	}

	template := service.NewHTMLTemplate(cfg.Output.Title, cfg.Output.Stylesheet)

	return app.NewConvertUseCaseBuilder().
		WithService(service.NewReportService(progress)).
		WithFileReader(service.NewFileReader()).
		WithFormatter(service.NewReportFormatter(template)).
		WithOutputWriter(service.NewFileOutputWriter(cmd.OutOrStdout())).
		WithFormatResolver(service.NewOutputFormatResolver()).
		Build()
}

// reportError prints the categorized error and returns it so main exits non-zero
func (c *ConvertCommand) reportError(cmd *cobra.Command, err error) error {
	categorizer := service.NewErrorCategorizer()
	categorized := categorizer.Categorize(err)

	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", categorized.Category, err)

	if c.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s\n", categorized.Message)
		fmt.Fprintf(cmd.ErrOrStderr(), "Suggestions:\n")
		for _, s := range categorizer.GetRecoverySuggestions(categorized.Category) {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", s)
		}
	}

	return categorized
}

// GetExplicitFlags extracts which flags were explicitly set from a cobra command
func GetExplicitFlags(cmd *cobra.Command) map[string]bool {
	explicitFlags := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			explicitFlags[f.Name] = true
		})
	}
	return explicitFlags
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd())) && !strings.EqualFold(os.Getenv("TERM"), "dumb")
}
