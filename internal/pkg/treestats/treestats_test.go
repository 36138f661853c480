package treestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treescount/treedash/internal/pkg/census"
)

func TestHealthProportionsExample(t *testing.T) {
	rows := []census.Record{
		{Species: "Red Maple", Borough: "Queens", Health: "Good", Steward: "0", Count: 30},
		{Species: "Red Maple", Borough: "Queens", Health: "Fair", Steward: "1-2", Count: 10},
	}

	got := HealthProportions(rows)
	require.Len(t, got, 3)

	// Ordered Good, Fair, Poor; Poor zero-filled
	assert.Equal(t, "Good", got[0].Health)
	assert.Equal(t, 0.75, got[0].Proportion)
	assert.Equal(t, 30, got[0].Count)

	assert.Equal(t, "Fair", got[1].Health)
	assert.Equal(t, 0.25, got[1].Proportion)

	assert.Equal(t, "Poor", got[2].Health)
	assert.Equal(t, 0.0, got[2].Proportion)
	assert.Equal(t, 0, got[2].Count)
}

func TestHealthProportionsSumToOne(t *testing.T) {
	rows := []census.Record{
		{Health: "Good", Steward: "0", Count: 17},
		{Health: "Good", Steward: "1-2", Count: 4},
		{Health: "Fair", Steward: "0", Count: 9},
		{Health: "Poor", Steward: "3-4", Count: 3},
	}

	sum := 0.0
	for _, p := range HealthProportions(rows) {
		sum += p.Proportion
	}
	assert.InDelta(t, 1.0, sum, 0.02)
}

func TestHealthProportionsEmptySelection(t *testing.T) {
	got := HealthProportions(nil)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Zero(t, p.Proportion)
		assert.Zero(t, p.Count)
	}
}

func TestStewardshipWithinBucketNormalization(t *testing.T) {
	rows := []census.Record{
		{Health: "Good", Steward: "0", Count: 6},
		{Health: "Fair", Steward: "0", Count: 2},
		{Health: "Good", Steward: "1-2", Count: 1},
		{Health: "Poor", Steward: "1-2", Count: 3},
	}

	impact := Stewardship(rows)
	assert.Equal(t, []string{"0", "1-2", "3-4", "4+"}, impact.Buckets)
	require.Len(t, impact.Series, 3)

	good, fair, poor := impact.Series[0], impact.Series[1], impact.Series[2]
	assert.Equal(t, "Good", good.Health)
	assert.Equal(t, "Fair", fair.Health)
	assert.Equal(t, "Poor", poor.Health)

	// Bucket "0": 6 good / 2 fair of 8 total
	assert.Equal(t, 0.75, good.Proportions[0])
	assert.Equal(t, 0.25, fair.Proportions[0])
	assert.Equal(t, 0.0, poor.Proportions[0])
	assert.Equal(t, 6, good.Counts[0])

	// Bucket "1-2": 1 good / 3 poor of 4 total
	assert.Equal(t, 0.25, good.Proportions[1])
	assert.Equal(t, 0.75, poor.Proportions[1])

	// Empty buckets zero-filled for proportions and counts
	for _, series := range impact.Series {
		assert.Zero(t, series.Proportions[2])
		assert.Zero(t, series.Proportions[3])
		assert.Zero(t, series.Counts[2])
		assert.Zero(t, series.Counts[3])
	}
}

func TestStewardshipBucketsSumToOne(t *testing.T) {
	rows := []census.Record{
		{Health: "Good", Steward: "0", Count: 11},
		{Health: "Fair", Steward: "0", Count: 5},
		{Health: "Poor", Steward: "0", Count: 2},
		{Health: "Good", Steward: "3-4", Count: 7},
		{Health: "Fair", Steward: "3-4", Count: 7},
	}

	impact := Stewardship(rows)
	totals := map[int]float64{}
	for _, series := range impact.Series {
		for i, p := range series.Proportions {
			totals[i] += p
		}
	}

	// Nonzero buckets sum to 1 within rounding; empty buckets stay zero
	assert.InDelta(t, 1.0, totals[0], 0.02)
	assert.InDelta(t, 1.0, totals[2], 0.02)
	assert.Zero(t, totals[1])
	assert.Zero(t, totals[3])
}

func TestStewardshipEmptySelection(t *testing.T) {
	impact := Stewardship(nil)
	require.Len(t, impact.Series, 3)
	for _, series := range impact.Series {
		require.Len(t, series.Proportions, 4)
		for i := range series.Proportions {
			assert.Zero(t, series.Proportions[i])
			assert.Zero(t, series.Counts[i])
		}
	}
}
