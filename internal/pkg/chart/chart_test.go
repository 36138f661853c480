package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treescount/treedash/internal/pkg/census"
	"github.com/treescount/treedash/internal/pkg/treestats"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestHealthPNG(t *testing.T) {
	rows := []census.Record{
		{Health: "Good", Steward: "0", Count: 30},
		{Health: "Fair", Steward: "1-2", Count: 10},
	}

	png, err := HealthPNG(treestats.HealthProportions(rows), "Queens", "Red Maple")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestStewardshipPNG(t *testing.T) {
	rows := []census.Record{
		{Health: "Good", Steward: "0", Count: 6},
		{Health: "Fair", Steward: "0", Count: 2},
		{Health: "Poor", Steward: "1-2", Count: 3},
	}

	png, err := StewardshipPNG(treestats.Stewardship(rows), "Bronx", "Pin Oak")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestChartsRenderEmptySelection(t *testing.T) {
	png, err := HealthPNG(treestats.HealthProportions(nil), "Queens", "Red Maple")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	png, err = StewardshipPNG(treestats.Stewardship(nil), "Queens", "Red Maple")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
