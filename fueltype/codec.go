// Package fueltype maps internal fuel type codes to the labels shown to users.
package fueltype

import "strings"

// Internal fuel type codes as stored in inventory records.
const (
	Gas      = "gas"
	Diesel   = "diesel"
	Hybrid   = "hybrid"
	Electric = "electric"
)

// codes lists the enumerated set in prompt order.
var codes = []string{Gas, Diesel, Hybrid, Electric}

// Codec translates between internal fuel codes and localized display labels.
// The zero value is not usable; construct with NewCodec.
type Codec struct {
	display map[string]string
	reverse map[string]string
}

// NewCodec builds a codec over the fixed fuel type set.
func NewCodec() *Codec {
	display := map[string]string{
		Gas:      "Бензин",
		Diesel:   "Дизель",
		Hybrid:   "Гібрид",
		Electric: "Електрика",
	}
	reverse := make(map[string]string, len(display))
	for code, label := range display {
		reverse[strings.ToLower(label)] = code
	}
	return &Codec{display: display, reverse: reverse}
}

// Display returns the localized label for an internal code. Unknown codes are
// returned unchanged so that malformed stored data stays visible in listings
// instead of breaking rendering.
func (c *Codec) Display(code string) string {
	if label, ok := c.display[strings.ToLower(code)]; ok {
		return label
	}
	return code
}

// Internal resolves a display label to its internal code, matching
// case-insensitively. The second return value reports whether the label is part
// of the enumerated set; callers re-prompt on false.
func (c *Codec) Internal(label string) (string, bool) {
	code, ok := c.reverse[strings.ToLower(strings.TrimSpace(label))]
	return code, ok
}

// Labels returns the display labels in fixed prompt order.
func (c *Codec) Labels() []string {
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		labels = append(labels, c.display[code])
	}
	return labels
}

// ButtonRows lays the labels out two per row for a reply keyboard.
func (c *Codec) ButtonRows() [][]string {
	labels := c.Labels()
	rows := make([][]string, 0, (len(labels)+1)/2)
	for i := 0; i < len(labels); i += 2 {
		end := i + 2
		if end > len(labels) {
			end = len(labels)
		}
		rows = append(rows, labels[i:end])
	}
	return rows
}
