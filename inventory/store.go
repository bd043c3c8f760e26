package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lionmotors/carbot/core/logger"
)

// Categories understood by the store. Each maps to its own backing record set.
const (
	CategoryMarket  = "market"
	CategoryAuction = "auction"
)

const recordsFile = "cars.json"

var categoryDirs = map[string]string{
	CategoryMarket:  "market_cars",
	CategoryAuction: "auction_cars",
}

// recordSetSchema validates the shape of a stored record set. A present but
// non-conforming file is corruption, not "no data".
const recordSetSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["year", "make", "model", "price", "vin", "condition", "mileage", "fuel_type"],
		"properties": {
			"year": {"type": "integer"},
			"make": {"type": "string"},
			"model": {"type": "string"},
			"price": {"type": "number", "minimum": 0},
			"vin": {"type": "string"},
			"condition": {"type": "string"},
			"mileage": {"type": "number", "minimum": 0},
			"fuel_type": {"type": "string"},
			"image_paths": {"type": "array", "items": {"type": "string"}}
		}
	}
}`

// CorruptError reports a backing record set that exists but cannot be read or
// does not conform to the record schema. The conversation layer surfaces it to
// the user as "inventory unavailable" instead of crashing the session.
type CorruptError struct {
	Category string
	Path     string
	Err      error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("inventory: corrupt record set for %s (%s): %v", e.Category, e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Store reads vehicle record sets from per-category JSON files. Every Load
// re-reads the current on-disk snapshot; inventory sets are small and freshness
// wins over caching. A Store is safe for concurrent readers.
type Store struct {
	baseDir string
	schema  *jsonschema.Schema
}

// NewStore builds a store rooted at baseDir. The record set schema is compiled
// once here; compilation of the embedded schema cannot fail at runtime.
func NewStore(baseDir string) (*Store, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("records.schema.json", strings.NewReader(recordSetSchema)); err != nil {
		return nil, fmt.Errorf("inventory: add schema resource: %w", err)
	}
	schema, err := compiler.Compile("records.schema.json")
	if err != nil {
		return nil, fmt.Errorf("inventory: compile schema: %w", err)
	}
	return &Store{baseDir: baseDir, schema: schema}, nil
}

// Path returns the backing file for a category, or false for unknown categories.
func (s *Store) Path(category string) (string, bool) {
	dir, ok := categoryDirs[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return "", false
	}
	return filepath.Join(s.baseDir, dir, recordsFile), true
}

// Load returns the full record set for a category. A missing backing file is
// an empty set, not an error. A present but malformed file yields *CorruptError.
func (s *Store) Load(ctx context.Context, category string) ([]Record, error) {
	path, ok := s.Path(category)
	if !ok {
		return nil, fmt.Errorf("inventory: unknown category %q", category)
	}

	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug(ctx, "inventory", "load.empty",
				slog.String("category", category),
				slog.String("path", path),
			)
			return nil, nil
		}
		return nil, &CorruptError{Category: category, Path: path, Err: err}
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &CorruptError{Category: category, Path: path, Err: err}
	}
	if err := s.schema.Validate(raw); err != nil {
		return nil, &CorruptError{Category: category, Path: path, Err: err}
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &CorruptError{Category: category, Path: path, Err: err}
	}

	logger.Debug(ctx, "inventory", "load.ok",
		slog.String("status", "ok"),
		slog.String("category", category),
		slog.Int("records", len(records)),
		slog.Duration("duration", logger.Took(start)),
	)
	return records, nil
}
