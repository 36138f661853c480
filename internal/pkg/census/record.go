package census

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Health states recorded by the 2015 TreesCount street tree census,
// in display order.
const (
	HealthGood = "Good"
	HealthFair = "Fair"
	HealthPoor = "Poor"
)

// HealthStates lists the three states in the order charts display them.
var HealthStates = []string{HealthGood, HealthFair, HealthPoor}

// StewardBuckets lists the canonical steward-activity buckets in display order.
var StewardBuckets = []string{"0", "1-2", "3-4", "4+"}

// stewardLabels maps the raw census labels onto the canonical buckets.
var stewardLabels = map[string]string{
	"None":    "0",
	"1or2":    "1-2",
	"3or4":    "3-4",
	"4orMore": "4+",
}

// Record is one pre-aggregated census row: how many trees of one species,
// in one borough, share one health state and one steward-activity bucket.
type Record struct {
	Species string `json:"species"`
	Borough string `json:"borough"`
	Health  string `json:"health"`
	Steward string `json:"steward"`
	Count   int    `json:"count"`
}

// NormalizeSpecies title-cases a raw spc_common value and repairs the one
// known punctuation inconsistency in the dataset.
func NormalizeSpecies(raw string) string {
	// A cases.Caser carries state, so build one per call.
	name := cases.Title(language.AmericanEnglish).String(raw)
	if name == "'Schubert' Chokecherry" {
		return "Schubert Chokecherry"
	}
	return name
}

// NormalizeSteward maps a raw steward label onto its canonical bucket.
// Unknown labels come back unchanged with ok=false so callers can drop them.
func NormalizeSteward(raw string) (string, bool) {
	if bucket, ok := stewardLabels[raw]; ok {
		return bucket, true
	}
	// Already-canonical labels pass through unchanged.
	for _, b := range StewardBuckets {
		if raw == b {
			return raw, true
		}
	}
	return raw, false
}
