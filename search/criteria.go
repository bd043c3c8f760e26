// Package search holds the guided-search criteria accumulator and the
// inventory filter applied at the end of a search flow.
package search

import "math"

// Criteria accumulates the filters collected during one guided search flow.
// Unset fields do not constrain the result. A Criteria value belongs to exactly
// one conversation session and is consumed in full by the terminal search.
type Criteria struct {
	// FuelType is an internal fuel code when set.
	FuelType string
	// BrandModel is a lowercased substring matched against make and model.
	BrandModel string

	MinPrice float64
	MaxPrice float64
	// priceSet distinguishes "no band chosen" from a zero-valued band.
	priceSet bool
}

// SetPriceBand applies a band's bounds to the criteria.
func (c *Criteria) SetPriceBand(b Band) {
	c.MinPrice = b.Min
	c.MaxPrice = b.Max
	c.priceSet = true
}

// HasPrice reports whether a price band has been chosen.
func (c *Criteria) HasPrice() bool { return c.priceSet }

// IsZero reports whether no filter has been set at all.
func (c Criteria) IsZero() bool {
	return c.FuelType == "" && c.BrandModel == "" && !c.priceSet
}

// Band is one of the fixed, mutually exclusive price intervals offered as a
// selectable filter. Max may be +Inf for the open-ended top band.
type Band struct {
	Label string
	Min   float64
	Max   float64
}

// Unbounded reports whether the band has no upper limit.
func (b Band) Unbounded() bool { return math.IsInf(b.Max, 1) }

// bands lists the selectable price intervals in keyboard order.
var bands = []Band{
	{Label: "5 - 10.000$", Min: 5000, Max: 10000},
	{Label: "10 - 15.000$", Min: 10000, Max: 15000},
	{Label: "15 - 20.000$", Min: 15000, Max: 20000},
	{Label: "20.000$ +", Min: 20000, Max: math.Inf(1)},
}

// BandByLabel resolves a price band from the user's exact button text.
func BandByLabel(label string) (Band, bool) {
	for _, b := range bands {
		if b.Label == label {
			return b, true
		}
	}
	return Band{}, false
}

// Bands returns the selectable price bands in keyboard order.
func Bands() []Band {
	return append([]Band(nil), bands...)
}

// BandRows lays the band labels out two per row for a reply keyboard.
func BandRows() [][]string {
	return [][]string{
		{bands[0].Label, bands[1].Label},
		{bands[2].Label, bands[3].Label},
	}
}
