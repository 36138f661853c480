package census

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/treescount/treedash/internal/pkg/env"
)

// DefaultEndpoint is the Socrata resource for the 2015 TreesCount census.
const DefaultEndpoint = "https://data.cityofnewyork.us/resource/nwxe-4ae8.json"

const defaultLimit = 5000

// Config holds the connection settings for the Socrata SODA endpoint.
type Config struct {
	Endpoint string `validate:"required,url"`
	Limit    int    `validate:"gt=0,lte=50000"`
	AppToken string
	Timeout  time.Duration
}

// ConfigFromEnv builds a Config from the environment with working defaults.
func ConfigFromEnv() Config {
	limit := defaultLimit
	if raw := env.GetEnv("CENSUS_LIMIT", ""); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	return Config{
		Endpoint: env.GetEnv("CENSUS_ENDPOINT", DefaultEndpoint),
		Limit:    limit,
		AppToken: env.GetEnv("SODA_APP_TOKEN", ""),
		Timeout:  30 * time.Second,
	}
}

// Validate checks the config against its struct tags.
func (c Config) Validate() error {
	v := validator.New()
	return v.Struct(c)
}

// Client fetches pre-aggregated tree counts from the SODA endpoint.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid census config: %w", err)
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// rawRecord mirrors one row of the SODA response. Every field arrives as a
// string; count_tree_id is the alias Socrata gives the count(tree_id)
// aggregate from the $select clause.
type rawRecord struct {
	SpcCommon string `json:"spc_common"`
	Boroname  string `json:"boroname"`
	Health    string `json:"health"`
	Steward   string `json:"steward"`
	Count     string `json:"count_tree_id"`
}

// Fetch downloads the grouped counts and returns them cleaned: rows with a
// missing field are dropped, species names are normalized and steward labels
// are collapsed into the canonical buckets.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build census request: %w", err)
	}
	if c.cfg.AppToken != "" {
		req.Header.Set("X-App-Token", c.cfg.AppToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch census data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("census endpoint returned status %d", resp.StatusCode)
	}

	var rows []rawRecord
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode census response: %w", err)
	}

	return cleanRows(rows), nil
}

func (c *Client) queryURL() string {
	q := url.Values{
		"$select": {"spc_common,boroname,health,steward,count(tree_id)"},
		"$group":  {"spc_common,boroname,health,steward"},
		"$limit":  {strconv.Itoa(c.cfg.Limit)},
	}
	return c.cfg.Endpoint + "?" + q.Encode()
}

// cleanRows drops rows with missing fields and normalizes the labels.
func cleanRows(rows []rawRecord) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if row.SpcCommon == "" || row.Boroname == "" || row.Health == "" || row.Steward == "" || row.Count == "" {
			continue
		}
		count, err := strconv.Atoi(row.Count)
		if err != nil || count < 0 {
			continue
		}
		steward, ok := NormalizeSteward(row.Steward)
		if !ok {
			continue
		}
		records = append(records, Record{
			Species: NormalizeSpecies(row.SpcCommon),
			Borough: row.Boroname,
			Health:  row.Health,
			Steward: steward,
			Count:   count,
		})
	}
	return records
}
