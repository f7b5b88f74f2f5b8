package session

import "github.com/asandhu/theoryprep/internal/bank"

// FallbackLabel is returned when no band covers the computed
// percentage, which only happens with a gappy band table.
const FallbackLabel = "Result"

// DefaultBands is the band table used when the bank's meta carries
// none. Ordered best-first with widening ranges so that first match
// wins and every percentage in [0,100] is covered, fractional scores
// included. 86% is the real theory test pass mark.
var DefaultBands = []bank.Band{
	{MinPercent: 86, MaxPercent: 100, Label: "Pass"},
	{MinPercent: 50, MaxPercent: 100, Label: "Almost there"},
	{MinPercent: 0, MaxPercent: 100, Label: "Fail"},
}

// Percent returns score/total as 0..100, 0 when total is zero.
func Percent(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// Summarize maps a final score to a qualitative label by scanning the
// ordered band table for the first band containing the percentage.
func Summarize(score, total int, bands []bank.Band) string {
	percent := Percent(score, total)
	for _, b := range bands {
		if percent >= b.MinPercent && percent <= b.MaxPercent {
			return b.Label
		}
	}
	return FallbackLabel
}

// Bands picks the bank's configured band table, falling back to
// DefaultBands when the bank carries none.
func Bands(f *bank.File) []bank.Band {
	if f != nil && len(f.Meta.Scoring.ResultLabels) > 0 {
		return f.Meta.Scoring.ResultLabels
	}
	return DefaultBands
}
