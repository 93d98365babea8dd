package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
	"github.com/kamal-hamza/inlinegen/pkg/cheader"
)

// SizeChart builds a bar chart of original vs embedded size per asset
func SizeChart(assets []domain.ProcessedAsset) *charts.Bar {
	totals := domain.ComputeTotals(assets)

	subtitle := fmt.Sprintf("%d files, %s embedded", totals.Files, cheader.FormatSize(totals.FinalSize))
	if totals.Reduced() {
		subtitle += fmt.Sprintf(" (-%.1f%%)", totals.ReductionPercent())
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Embedded asset sizes"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Embedded asset sizes",
			Subtitle: subtitle,
		}),
	)

	names := lo.Map(assets, func(a domain.ProcessedAsset, _ int) string { return a.RelPath })
	original := lo.Map(assets, func(a domain.ProcessedAsset, _ int) opts.BarData {
		return opts.BarData{Name: a.RelPath, Value: a.OriginalSize}
	})
	final := lo.Map(assets, func(a domain.ProcessedAsset, _ int) opts.BarData {
		return opts.BarData{Name: a.RelPath, Value: a.FinalSize}
	})

	bar.SetXAxis(names).
		AddSeries("Original", original).
		AddSeries("Embedded", final)

	return bar
}

// Render writes the chart page to w
func Render(assets []domain.ProcessedAsset, w io.Writer) error {
	if err := SizeChart(assets).Render(w); err != nil {
		return fmt.Errorf("failed to render size report: %w", err)
	}
	return nil
}

// WriteFile renders the chart page to path, creating parent directories
func WriteFile(path string, assets []domain.ProcessedAsset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	return Render(assets, f)
}
