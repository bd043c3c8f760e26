package inventory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecords(t *testing.T, dir, category, payload string) {
	t.Helper()
	sub := filepath.Join(dir, category+"_cars")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "cars.json"), []byte(payload), 0o644))
}

const validSet = `[
	{
		"year": 2018,
		"make": "Toyota",
		"model": "Camry",
		"price": 12000,
		"vin": "4T1BF1FK5JU123456",
		"condition": "used",
		"mileage": 54000,
		"fuel_type": "gas",
		"image_paths": ["market_cars/camry_1.jpg"]
	}
]`

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	records, err := store.Load(context.Background(), CategoryMarket)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadValidSet(t *testing.T) {
	dir := t.TempDir()
	writeRecords(t, dir, "market", validSet)
	store, err := NewStore(dir)
	require.NoError(t, err)

	records, err := store.Load(context.Background(), CategoryMarket)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Toyota", records[0].Make)
	assert.Equal(t, 12000.0, records[0].Price)
	assert.Equal(t, []string{"market_cars/camry_1.jpg"}, records[0].ImagePaths)
}

func TestLoadMalformedJSONIsCorrupt(t *testing.T) {
	dir := t.TempDir()
	writeRecords(t, dir, "auction", `[{"year": 2018,`)
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Load(context.Background(), CategoryAuction)
	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, CategoryAuction, corrupt.Category)
}

func TestLoadSchemaViolationIsCorrupt(t *testing.T) {
	dir := t.TempDir()
	// price is a string and mileage is missing
	writeRecords(t, dir, "market", `[
		{"year": 2018, "make": "Toyota", "model": "Camry", "price": "cheap",
		 "vin": "x", "condition": "used", "fuel_type": "gas"}
	]`)
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Load(context.Background(), CategoryMarket)
	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
}

func TestLoadUnknownCategory(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "junkyard")
	require.Error(t, err)
	var corrupt *CorruptError
	assert.False(t, errors.As(err, &corrupt))
}

func TestLoadConcurrentReaders(t *testing.T) {
	dir := t.TempDir()
	writeRecords(t, dir, "market", validSet)
	store, err := NewStore(dir)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := store.Load(context.Background(), CategoryMarket)
			assert.NoError(t, err)
			assert.Len(t, records, 1)
		}()
	}
	wg.Wait()
}
