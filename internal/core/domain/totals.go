package domain

import "github.com/samber/lo"

// Totals aggregates sizes over every processed asset of one run
type Totals struct {
	Files        int
	OriginalSize int
	FinalSize    int
}

// ComputeTotals sums original and final sizes
func ComputeTotals(assets []ProcessedAsset) Totals {
	return Totals{
		Files:        len(assets),
		OriginalSize: lo.SumBy(assets, func(a ProcessedAsset) int { return a.OriginalSize }),
		FinalSize:    lo.SumBy(assets, func(a ProcessedAsset) int { return a.FinalSize }),
	}
}

// Reduced reports whether the totals differ
func (t Totals) Reduced() bool {
	return t.FinalSize != t.OriginalSize
}

// ReductionPercent returns the aggregate reduction in percent
func (t Totals) ReductionPercent() float64 {
	return ReductionPercent(t.OriginalSize, t.FinalSize)
}
