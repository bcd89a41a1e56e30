package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ludo-technologies/cmreport/domain"
	"github.com/ludo-technologies/cmreport/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the cmreport command tree
func NewRootCmd() *cobra.Command {
	convert := NewConvertCommand()

	rootCmd := &cobra.Command{
		Use:   "cmreport <input.xml> <output>",
		Short: "Convert code metrics XML reports to CSV or HTML",
		Long: `cmreport converts a code metrics XML report (assembly, namespaces,
types and members) into a CSV table set or a colour-coded HTML document.

The output format follows the output file extension: .htm/.html (any case)
produces HTML, anything else produces CSV.

Examples:
  # Write CSV
  cmreport metrics.xml metrics.csv

  # Write HTML and open it in the browser
  cmreport metrics.xml metrics.html --open`,
		Version:       version.Short(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          convert.Run,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	convert.AddFlags(rootCmd)

	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())

	return rootCmd
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		// Conversion errors are already printed with their category
		var categorized *domain.CategorizedError
		if !errors.As(err, &categorized) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
