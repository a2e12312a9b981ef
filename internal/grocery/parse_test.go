package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		unit     UnitKind
		key      string
		quantity float64
		grams    float64
		ml       float64
	}{
		{name: "kilograms", raw: "2 kg pommes de terre", unit: UnitMass, key: "pommes de terre", quantity: 2, grams: 2000},
		{name: "grams with decimal comma", raw: "1,5 kg farine", unit: UnitMass, key: "farine", quantity: 1.5, grams: 1500},
		{name: "milligrams", raw: "500 mg safran", unit: UnitMass, key: "safran", quantity: 500, grams: 0.5},
		{name: "litres", raw: "1 l lait", unit: UnitVolume, key: "lait", quantity: 1, ml: 1000},
		{name: "centilitres", raw: "2 cl huile", unit: UnitVolume, key: "huile", quantity: 2, ml: 20},
		{name: "volume after name", raw: "Crème fraîche 20 cl", unit: UnitVolume, key: "creme fraiche 20 cl", quantity: 20, ml: 200},
		{name: "tablespoon", raw: "1 c. a soupe huile", unit: UnitTeaspoon, key: "huile", quantity: 1, ml: 15},
		{name: "teaspoon", raw: "2 c. a cafe", unit: UnitTeaspoon, key: "2 c. a cafe", quantity: 2, ml: 10},
		{name: "teaspoon abbreviation", raw: "1 cc cumin", unit: UnitTeaspoon, key: "cumin", quantity: 1, ml: 5},
		{name: "count", raw: "3 carottes", unit: UnitCount, key: "carottes", quantity: 3},
		{name: "count with x", raw: "3x tomates", unit: UnitCount, key: "tomates", quantity: 3},
		{name: "fraction count", raw: "1/2 citron", unit: UnitCount, key: "citron", quantity: 0.5},
		{name: "word starting with g is not grams", raw: "1 gousse d'ail", unit: UnitCount, key: "gousse d ail", quantity: 1},
		{name: "word starting with l is not litres", raw: "2 lardons", unit: UnitCount, key: "lardons", quantity: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			assert.Equal(t, tt.unit, got.Unit)
			assert.Equal(t, tt.key, got.Key)
			assert.Equal(t, tt.raw, got.Raw)
			require.NotNil(t, got.Quantity)
			assert.InDelta(t, tt.quantity, *got.Quantity, 1e-9)
			assert.InDelta(t, tt.grams, got.MassGrams, 1e-9)
			assert.InDelta(t, tt.ml, got.VolumeML, 1e-9)
		})
	}
}

func TestParseNoQuantity(t *testing.T) {
	got := Parse("Sel")
	assert.Equal(t, UnitNone, got.Unit)
	assert.Nil(t, got.Quantity)
	assert.Equal(t, "sel", got.Key)
}

func TestParseKeyFallback(t *testing.T) {
	// Normalization empties these; the key must still be non-empty.
	for _, raw := range []string{"(facultatif)", "2 c. a cafe", "250 g"} {
		assert.NotEmpty(t, Parse(raw).Key, "raw %q", raw)
	}
	assert.Equal(t, "(facultatif)", Parse("(Facultatif)").Key)
}
