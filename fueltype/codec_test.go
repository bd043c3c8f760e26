package fueltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayRoundTrip(t *testing.T) {
	c := NewCodec()
	for _, code := range []string{Gas, Diesel, Hybrid, Electric} {
		label := c.Display(code)
		require.NotEqual(t, code, label, "code %q must have a localized label", code)

		got, ok := c.Internal(label)
		require.True(t, ok, "label %q must resolve back", label)
		assert.Equal(t, code, got)
	}
}

func TestDisplayUnknownPassthrough(t *testing.T) {
	c := NewCodec()
	assert.Equal(t, "plutonium", c.Display("plutonium"))
	assert.Equal(t, "", c.Display(""))
}

func TestInternalCaseInsensitive(t *testing.T) {
	c := NewCodec()

	code, ok := c.Internal("бензин")
	require.True(t, ok)
	assert.Equal(t, Gas, code)

	code, ok = c.Internal("  ДИЗЕЛЬ  ")
	require.True(t, ok)
	assert.Equal(t, Diesel, code)

	_, ok = c.Internal("kerosene")
	assert.False(t, ok)
}

func TestButtonRows(t *testing.T) {
	c := NewCodec()
	rows := c.ButtonRows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Бензин", "Дизель"}, rows[0])
	assert.Equal(t, []string{"Гібрид", "Електрика"}, rows[1])
}
