package cmd

import (
	"fmt"
	"io"

	"github.com/kamal-hamza/inlinegen/internal/adapters/minifier"
	"github.com/kamal-hamza/inlinegen/internal/adapters/repository"
	"github.com/kamal-hamza/inlinegen/internal/core/ports"
	"github.com/kamal-hamza/inlinegen/internal/core/services"
	"github.com/kamal-hamza/inlinegen/pkg/cheader"
	"github.com/kamal-hamza/inlinegen/pkg/config"
	"github.com/kamal-hamza/inlinegen/pkg/ui"
	"github.com/kamal-hamza/inlinegen/pkg/workspace"
)

// newLogger returns the diagnostics logger selected by --log-format
func newLogger(w io.Writer, quiet bool) ports.Logger {
	if logFormat == "json" {
		return ui.NewJSONLogger(w, quiet)
	}
	return ui.NewConsoleLogger(w, quiet)
}

// newGenerateService wires the collector, minifier and pipeline from cfg.
// workers overrides max_workers when positive.
func newGenerateService(cfg *config.Config, ws *workspace.Workspace, logger ports.Logger, workers int) (*services.GenerateService, error) {
	source, err := repository.NewAssetRepository(cfg.Exclude)
	if err != nil {
		return nil, err
	}

	m, err := minifier.New(cfg.Minifier, ws.ProjectPath)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = cfg.MaxWorkers
	}

	reader := services.NewReaderService(m, logger, cfg.Minifier.Extensions, cfg.Minifier.Timeout())
	pipeline := services.NewPipelineService(reader, workers)

	return services.NewGenerateService(source, pipeline, logger, cheader.Options{
		Guard:     cfg.IncludeGuard,
		Generator: cfg.GeneratorTag,
	}), nil
}

// generateRequest builds the request for the current workspace
func generateRequest(cfg *config.Config, ws *workspace.Workspace) services.GenerateRequest {
	return services.GenerateRequest{
		DataDir:    ws.DataPath,
		GenDir:     ws.GenPath,
		HeaderName: cfg.HeaderName,
	}
}

// printSummary writes the end-of-run totals
func printSummary(w io.Writer, resp *services.GenerateResponse) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "Processed %d files\n", resp.Totals.Files)
	fmt.Fprintf(w, "Total original size: %s\n", cheader.FormatSize(resp.Totals.OriginalSize))
	fmt.Fprintf(w, "Total minified size: %s\n", cheader.FormatSize(resp.Totals.FinalSize))
	if resp.Totals.Reduced() {
		fmt.Fprintf(w, "Total reduction: %.1f%%\n", resp.Totals.ReductionPercent())
	}
	fmt.Fprintln(w)
}
