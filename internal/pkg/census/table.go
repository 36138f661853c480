package census

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/treescount/treedash/internal/pkg/cache"
)

const (
	snapshotCacheKey = "census:snapshot:v1"
	snapshotCacheTTL = 24 * time.Hour
)

// Table is the immutable in-memory census table. It is built once at
// startup and only read afterwards, so handlers share it without locking.
type Table struct {
	records    []Record
	boroughs   []string
	species    []string
	snapshotID string
	loadedAt   time.Time
}

// NewTable builds a table from cleaned records and precomputes the sorted
// distinct selector options.
func NewTable(records []Record) *Table {
	boroughSet := make(map[string]bool)
	speciesSet := make(map[string]bool)
	for _, r := range records {
		boroughSet[r.Borough] = true
		speciesSet[r.Species] = true
	}

	boroughs := make([]string, 0, len(boroughSet))
	for b := range boroughSet {
		boroughs = append(boroughs, b)
	}
	sort.Strings(boroughs)

	species := make([]string, 0, len(speciesSet))
	for s := range speciesSet {
		species = append(species, s)
	}
	sort.Strings(species)

	return &Table{
		records:    records,
		boroughs:   boroughs,
		species:    species,
		snapshotID: uuid.NewString(),
		loadedAt:   time.Now(),
	}
}

func (t *Table) Len() int {
	return len(t.records)
}

// Boroughs returns the sorted distinct borough names.
func (t *Table) Boroughs() []string {
	return append([]string(nil), t.boroughs...)
}

// Species returns the sorted distinct species names.
func (t *Table) Species() []string {
	return append([]string(nil), t.species...)
}

func (t *Table) HasBorough(name string) bool {
	for _, b := range t.boroughs {
		if b == name {
			return true
		}
	}
	return false
}

func (t *Table) HasSpecies(name string) bool {
	for _, s := range t.species {
		if s == name {
			return true
		}
	}
	return false
}

// Filter returns the rows matching the selection. An empty result is not an
// error; the views render degenerate charts for it.
func (t *Table) Filter(borough, species string) []Record {
	var rows []Record
	for _, r := range t.records {
		if r.Borough == borough && r.Species == species {
			rows = append(rows, r)
		}
	}
	return rows
}

// SnapshotID identifies this load of the dataset.
func (t *Table) SnapshotID() string {
	return t.snapshotID
}

func (t *Table) LoadedAt() time.Time {
	return t.loadedAt
}

var table *Table

// SetupDataset loads the census table once at startup. A failed download is
// fatal: the dashboard is useless without data and the loader does not retry.
func SetupDataset() {
	t, err := LoadTable(context.Background())
	if err != nil {
		log.Fatalf("failed to load census dataset: %v", err)
	}
	SetTable(t)
	log.Printf("census dataset loaded: %d rows, %d boroughs, %d species (snapshot %s)",
		t.Len(), len(t.boroughs), len(t.species), t.SnapshotID())
}

// LoadTable prefers a cached snapshot and falls back to a live fetch.
// Cache failures only log; the fetch path is authoritative.
func LoadTable(ctx context.Context) (*Table, error) {
	if cache.Available() {
		if payload, err := cache.Get(snapshotCacheKey); err == nil {
			var records []Record
			if unmarshalErr := json.Unmarshal([]byte(payload), &records); unmarshalErr != nil || len(records) == 0 {
				log.Printf("ignoring unreadable census snapshot in cache: %v", unmarshalErr)
			} else {
				log.Printf("census dataset restored from cache (%d rows)", len(records))
				return NewTable(records), nil
			}
		}
	}

	client, err := NewClient(ConfigFromEnv())
	if err != nil {
		return nil, err
	}
	records, err := client.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if cache.Available() {
		if payload, err := json.Marshal(records); err == nil {
			if err := cache.Set(snapshotCacheKey, payload, snapshotCacheTTL); err != nil {
				log.Printf("failed to cache census snapshot: %v", err)
			}
		}
	}

	return NewTable(records), nil
}

// GetTable returns the shared census table.
func GetTable() *Table {
	return table
}

// SetTable installs the shared table. Called once from SetupDataset and by
// tests that need a fixture dataset.
func SetTable(t *Table) {
	table = t
}
