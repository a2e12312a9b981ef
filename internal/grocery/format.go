package grocery

import (
	"math"
	"strconv"
	"strings"
)

// Formatter renders an aggregated entry as a display label.
type Formatter struct {
	weights WeightTable
}

func NewFormatter(weights WeightTable) *Formatter {
	return &Formatter{weights: weights}
}

// Format renders entry for key. Mass takes precedence over volume, volume
// over count. Counted produce with a known unit weight gets an estimated
// weight instead: "5 carottes (500 g)".
func (f *Formatter) Format(e Entry, key string) string {
	if e.Count > 0 && e.MassGrams <= 0 {
		if unit, ok := f.weights.Lookup(key); ok {
			name := key
			if e.Count > 1 && !strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "x") {
				name += "s"
			}
			return formatNumber(e.Count) + " " + name + " (" + FormatMass(e.Count*unit) + ")"
		}
	}

	var amount string
	switch {
	case e.MassGrams > 0:
		amount = FormatMass(e.MassGrams)
	case e.VolumeML > 0:
		amount = FormatVolume(e.VolumeML)
	case e.Count > 0:
		amount = formatNumber(e.Count) + "x"
	}
	if amount == "" {
		return key
	}
	return amount + " " + key
}

// FormatMass renders grams, switching to kilograms from 1000 g.
func FormatMass(grams float64) string {
	if grams >= 1000 {
		return formatNumber(grams/1000) + " kg"
	}
	return strconv.FormatFloat(math.Round(grams), 'f', 0, 64) + " g"
}

// FormatVolume renders millilitres as L, cl or ml.
func FormatVolume(ml float64) string {
	switch {
	case ml >= 1000:
		return formatNumber(ml/1000) + " L"
	case ml >= 100:
		return strconv.FormatFloat(math.Round(ml/10), 'f', 0, 64) + " cl"
	default:
		return strconv.FormatFloat(math.Round(ml), 'f', 0, 64) + " ml"
	}
}

// formatNumber keeps at most two decimals and drops trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
