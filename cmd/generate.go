package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/inlinegen/internal/core/services"
	"github.com/kamal-hamza/inlinegen/pkg/cheader"
	"github.com/kamal-hamza/inlinegen/pkg/report"
	"github.com/kamal-hamza/inlinegen/pkg/ui"
)

var (
	genTargets      []string
	genPrintInclude bool
	genQuiet        bool
	genVerbose      bool
	genReport       string
	genWorkers      int
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the embedded asset header",
	Long: `Generate the embedded asset header from the project's data directory.

Every file under data_dir becomes a PROGMEM byte array in
<build>/<output_dir>/<header_name>. html, js and css files are minified
first; any minifier failure or timeout falls back to the original bytes.

When the data directory does not exist nothing is generated.

Use --print-include from a PlatformIO build_flags '!command' entry: the
include flag is the only thing written to stdout and all diagnostics go
to stderr.`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

// addGenerateFlags registers the generate flags on c. The root command
// carries them too since it runs generate by default.
func addGenerateFlags(c *cobra.Command) {
	c.Flags().StringArrayVarP(&genTargets, "target", "t", nil, "Host build target (repeatable); skipped when listed in skip_targets")
	c.Flags().BoolVar(&genPrintInclude, "print-include", false, "Print only -I<dir> on stdout")
	c.Flags().BoolVarP(&genQuiet, "quiet", "q", false, "Suppress notes, keep warnings")
	c.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print a per-asset size table")
	c.Flags().StringVar(&genReport, "report", "", "Write an HTML size report to this path")
	c.Flags().IntVarP(&genWorkers, "workers", "j", 0, "Worker count (default max_workers or min(32, 2*CPU))")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	out := cmd.OutOrStdout()
	diag := out
	if genPrintInclude {
		diag = cmd.ErrOrStderr()
	}

	if appConfig.ShouldSkip(genTargets) {
		if !genQuiet {
			fmt.Fprintln(diag, ui.FormatMuted("Skipping asset generation for target "+strings.Join(genTargets, ", ")))
		}
		return nil
	}

	logger := newLogger(diag, genQuiet)

	svc, err := newGenerateService(appConfig, appWorkspace, logger, genWorkers)
	if err != nil {
		return err
	}

	logger.Info("dataDir = %s", appWorkspace.DataPath)
	logger.Info("genDir = %s", appWorkspace.GenPath)

	resp, err := svc.Execute(ctx, generateRequest(appConfig, appWorkspace))
	if err != nil {
		return err
	}

	if resp.Skipped {
		logger.Info("No data directory at %s, nothing to embed", appWorkspace.DataPath)
		return nil
	}

	if genPrintInclude {
		fmt.Fprintf(out, "-I%s\n", resp.IncludePath)
	}

	if !genQuiet {
		printSummary(diag, resp)
		if genVerbose {
			fmt.Fprintln(diag, assetTable(resp))
		}
		fmt.Fprintln(diag, ui.FormatSuccess("Header written to "+resp.HeaderPath))
	}

	if genReport != "" {
		if err := report.WriteFile(genReport, resp.Assets); err != nil {
			return err
		}
		logger.Info("Size report written to %s", genReport)
	}

	return nil
}

// assetTable renders one row per embedded asset
func assetTable(resp *services.GenerateResponse) string {
	table := ui.NewTable([]ui.TableColumn{
		{Header: "File", Align: ui.AlignLeft},
		{Header: "Original", Align: ui.AlignRight},
		{Header: "Embedded", Align: ui.AlignRight},
		{Header: "Saved", Align: ui.AlignRight},
	})

	for _, asset := range resp.Assets {
		table.AddRow([]string{
			asset.RelPath,
			cheader.FormatCount(asset.OriginalSize),
			cheader.FormatCount(asset.FinalSize),
			savedCell(asset.Reduced(), asset.ReductionPercent()),
		})
	}

	table.SetFooter([]string{
		"Total",
		cheader.FormatCount(resp.Totals.OriginalSize),
		cheader.FormatCount(resp.Totals.FinalSize),
		savedCell(resp.Totals.Reduced(), resp.Totals.ReductionPercent()),
	})

	return table.Render()
}

func savedCell(reduced bool, percent float64) string {
	if !reduced {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", percent)
}
