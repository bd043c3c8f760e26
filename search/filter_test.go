package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionmotors/carbot/inventory"
)

func fixtures() []inventory.Record {
	return []inventory.Record{
		{Year: 2018, Make: "Toyota", Model: "Camry", Price: 12000, VIN: "vin-1", FuelType: "gas"},
		{Year: 2020, Make: "Nissan", Model: "Leaf", Price: 18000, VIN: "vin-2", FuelType: "ELECTRIC"},
		{Year: 2015, Make: "Volkswagen", Model: "Golf", Price: 7500, VIN: "vin-3", FuelType: "diesel"},
		{Year: 2022, Make: "BMW", Model: "X5", Price: 42000, VIN: "vin-4", FuelType: "hybrid"},
	}
}

func TestApplyEmptyCriteriaIsIdentity(t *testing.T) {
	records := fixtures()
	got := Apply(records, Criteria{})
	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i].VIN, got[i].VIN)
	}
}

func TestApplyFuelTypeIsCaseInsensitiveOnRecords(t *testing.T) {
	got := Apply(fixtures(), Criteria{FuelType: "electric"})
	require.Len(t, got, 1)
	assert.Equal(t, "vin-2", got[0].VIN)
}

func TestApplyBrandModelMatchesMakeOrModel(t *testing.T) {
	got := Apply(fixtures(), Criteria{BrandModel: "golf"})
	require.Len(t, got, 1)
	assert.Equal(t, "vin-3", got[0].VIN)

	got = Apply(fixtures(), Criteria{BrandModel: "toyo"})
	require.Len(t, got, 1)
	assert.Equal(t, "vin-1", got[0].VIN)

	assert.Empty(t, Apply(fixtures(), Criteria{BrandModel: "tesla"}))
}

func TestApplyPriceBandBoundsInclusive(t *testing.T) {
	band, ok := BandByLabel("10 - 15.000$")
	require.True(t, ok)

	var c Criteria
	c.SetPriceBand(band)
	got := Apply([]inventory.Record{
		{VIN: "below", Price: 9999.99},
		{VIN: "low-edge", Price: 10000},
		{VIN: "high-edge", Price: 15000},
		{VIN: "above", Price: 15000.01},
	}, c)

	require.Len(t, got, 2)
	assert.Equal(t, "low-edge", got[0].VIN)
	assert.Equal(t, "high-edge", got[1].VIN)
}

func TestApplyUnboundedBand(t *testing.T) {
	band, ok := BandByLabel("20.000$ +")
	require.True(t, ok)
	require.True(t, band.Unbounded())

	var c Criteria
	c.SetPriceBand(band)
	got := Apply(fixtures(), c)
	require.Len(t, got, 1)
	assert.Equal(t, "vin-4", got[0].VIN)
}

func TestApplyAllFiltersCombined(t *testing.T) {
	band, ok := BandByLabel("10 - 15.000$")
	require.True(t, ok)

	c := Criteria{FuelType: "gas", BrandModel: "camry"}
	c.SetPriceBand(band)

	got := Apply(fixtures(), c)
	require.Len(t, got, 1)
	assert.Equal(t, "vin-1", got[0].VIN)
}

func TestApplyPreservesSourceOrder(t *testing.T) {
	records := []inventory.Record{
		{VIN: "a", Price: 6000, FuelType: "gas"},
		{VIN: "b", Price: 9000, FuelType: "gas"},
		{VIN: "c", Price: 5000, FuelType: "gas"},
	}
	band, _ := BandByLabel("5 - 10.000$")
	var c Criteria
	c.SetPriceBand(band)

	got := Apply(records, c)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].VIN, got[1].VIN, got[2].VIN})
}

func TestBandByLabelUnknown(t *testing.T) {
	_, ok := BandByLabel("1 - 2.000$")
	assert.False(t, ok)
}
