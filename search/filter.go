package search

import (
	"strings"

	"github.com/lionmotors/carbot/inventory"
)

// Apply filters records by the accumulated criteria. It is pure: inputs are
// not mutated, result order equals input order, and empty criteria passes
// every record through. A record matches only when every set filter holds.
func Apply(records []inventory.Record, c Criteria) []inventory.Record {
	if c.IsZero() {
		return records
	}
	filtered := make([]inventory.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, c) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func matches(rec inventory.Record, c Criteria) bool {
	if c.FuelType != "" && strings.ToLower(rec.FuelType) != c.FuelType {
		return false
	}
	if c.BrandModel != "" {
		inMake := strings.Contains(strings.ToLower(rec.Make), c.BrandModel)
		inModel := strings.Contains(strings.ToLower(rec.Model), c.BrandModel)
		if !inMake && !inModel {
			return false
		}
	}
	if c.priceSet {
		if rec.Price < c.MinPrice {
			return false
		}
		// An unbounded band stores +Inf, so the comparison stays valid.
		if rec.Price > c.MaxPrice {
			return false
		}
	}
	return true
}
