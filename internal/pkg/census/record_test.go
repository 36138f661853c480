package census

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpecies(t *testing.T) {
	assert.Equal(t, "Red Maple", NormalizeSpecies("red maple"))
	assert.Equal(t, "Crimson King Maple", NormalizeSpecies("crimson king maple"))

	// The one known punctuation inconsistency in the dataset
	assert.Equal(t, "Schubert Chokecherry", NormalizeSpecies("'schubert' chokecherry"))
	assert.Equal(t, "Schubert Chokecherry", NormalizeSpecies("'Schubert' Chokecherry"))
}

func TestNormalizeSteward(t *testing.T) {
	cases := map[string]string{
		"None":    "0",
		"1or2":    "1-2",
		"3or4":    "3-4",
		"4orMore": "4+",
	}
	for raw, want := range cases {
		got, ok := NormalizeSteward(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got)
	}
}

func TestNormalizeStewardCanonicalPassthrough(t *testing.T) {
	for _, bucket := range StewardBuckets {
		got, ok := NormalizeSteward(bucket)
		assert.True(t, ok)
		assert.Equal(t, bucket, got)
	}
}

func TestNormalizeStewardUnknown(t *testing.T) {
	_, ok := NormalizeSteward("5orMore")
	assert.False(t, ok)
}
