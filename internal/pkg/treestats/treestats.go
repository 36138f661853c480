// Package treestats computes the two chart projections of the census table:
// the overall health breakdown of a selection and the same breakdown split
// by steward-activity bucket.
package treestats

import (
	"math"

	"github.com/treescount/treedash/internal/pkg/census"
)

// HealthProportion is one bar of the health chart: the share of the
// selection's trees in one health state, plus the raw count behind it.
type HealthProportion struct {
	Health     string  `json:"health"`
	Proportion float64 `json:"proportion"`
	Count      int     `json:"count"`
}

// HealthProportions sums the counts per health state, divides by the
// selection total and rounds to two decimals. States absent from the rows
// come back with a zero proportion; the result is always ordered
// Good, Fair, Poor. An empty selection yields all-zero proportions.
func HealthProportions(rows []census.Record) []HealthProportion {
	counts := make(map[string]int)
	total := 0
	for _, r := range rows {
		counts[r.Health] += r.Count
		total += r.Count
	}

	out := make([]HealthProportion, 0, len(census.HealthStates))
	for _, state := range census.HealthStates {
		proportion := 0.0
		if total > 0 {
			proportion = round2(float64(counts[state]) / float64(total))
		}
		out = append(out, HealthProportion{
			Health:     state,
			Proportion: proportion,
			Count:      counts[state],
		})
	}
	return out
}

// StewardSeries is one health state's values across the steward buckets.
// Proportions are normalized within each bucket; Counts carry the raw
// numbers for hover text. Both are indexed like StewardshipImpact.Buckets.
type StewardSeries struct {
	Health      string    `json:"health"`
	Proportions []float64 `json:"proportions"`
	Counts      []int     `json:"counts"`
}

// StewardshipImpact is the stacked-chart projection: one series per health
// state over the four canonical steward buckets.
type StewardshipImpact struct {
	Buckets []string        `json:"buckets"`
	Series  []StewardSeries `json:"series"`
}

// Stewardship computes, for each steward bucket, the share of that bucket's
// trees in each health state. Buckets with no trees yield zeros for every
// state. Series are ordered Good, Fair, Poor; buckets 0, 1-2, 3-4, 4+.
//
// Proportions are normalized per bucket (each bucket's states sum to one),
// not per health state across buckets.
func Stewardship(rows []census.Record) StewardshipImpact {
	bucketTotals := make(map[string]int)
	cells := make(map[string]map[string]int)
	for _, r := range rows {
		bucketTotals[r.Steward] += r.Count
		if cells[r.Health] == nil {
			cells[r.Health] = make(map[string]int)
		}
		cells[r.Health][r.Steward] += r.Count
	}

	impact := StewardshipImpact{
		Buckets: append([]string(nil), census.StewardBuckets...),
		Series:  make([]StewardSeries, 0, len(census.HealthStates)),
	}
	for _, state := range census.HealthStates {
		series := StewardSeries{
			Health:      state,
			Proportions: make([]float64, len(census.StewardBuckets)),
			Counts:      make([]int, len(census.StewardBuckets)),
		}
		for i, bucket := range census.StewardBuckets {
			count := cells[state][bucket]
			series.Counts[i] = count
			if total := bucketTotals[bucket]; total > 0 {
				series.Proportions[i] = round2(float64(count) / float64(total))
			}
		}
		impact.Series = append(impact.Series, series)
	}
	return impact
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
