package grocery

import (
	"regexp"
	"strconv"
	"strings"
)

// UnitKind is the measurement dimension detected in an ingredient line.
type UnitKind string

const (
	UnitNone     UnitKind = "none"
	UnitCount    UnitKind = "count"
	UnitMass     UnitKind = "mass"
	UnitVolume   UnitKind = "volume"
	UnitTeaspoon UnitKind = "teaspoon"
)

const (
	teaspoonML   = 5
	tablespoonML = 15
)

// Ingredient is the parsed form of one raw ingredient line.
type Ingredient struct {
	// Key is the canonical grouping key, never empty for non-empty input.
	Key string
	// Raw is the original line.
	Raw      string
	Unit     UnitKind
	Quantity *float64
	// MassGrams is set when Unit is UnitMass.
	MassGrams float64
	// VolumeML is set when Unit is UnitVolume or UnitTeaspoon.
	VolumeML float64
}

const qtyPattern = `(\d+/\d+|\d+(?:[.,]\d+)?)`

var (
	massRe       = regexp.MustCompile(qtyPattern + `\s*(kg|kilos?|grammes?|g|mg)\b`)
	volumeRe     = regexp.MustCompile(qtyPattern + `\s*(litres?|l|cl|ml)\b`)
	teaspoonRe   = regexp.MustCompile(qtyPattern + `\s*(?:(?:c\.?|cuill\.?|cuilleres?)\s*a\s*cafe|cc|tsp)\b`)
	tablespoonRe = regexp.MustCompile(qtyPattern + `\s*(?:(?:c\.?|cuill\.?|cuilleres?)\s*a\s*soupe|cs|tbsp)\b`)
	countRe      = regexp.MustCompile(`^` + qtyPattern + `\s*(?:x\s*)?[a-z]`)
)

// Parse extracts the quantity and unit of a raw ingredient line. The first
// matching dimension wins, in order mass, volume, spoon, count.
func Parse(raw string) Ingredient {
	ing := Ingredient{Key: canonicalKey(raw), Raw: raw, Unit: UnitNone}
	s := strings.TrimSpace(fold(raw))

	if m := massRe.FindStringSubmatch(s); m != nil {
		if q, ok := parseQty(m[1]); ok {
			ing.Unit = UnitMass
			ing.Quantity = &q
			ing.MassGrams = toGrams(q, m[2])
			return ing
		}
	}
	if m := volumeRe.FindStringSubmatch(s); m != nil {
		if q, ok := parseQty(m[1]); ok {
			ing.Unit = UnitVolume
			ing.Quantity = &q
			ing.VolumeML = toMillilitres(q, m[2])
			return ing
		}
	}
	if m := teaspoonRe.FindStringSubmatch(s); m != nil {
		if q, ok := parseQty(m[1]); ok {
			ing.Unit = UnitTeaspoon
			ing.Quantity = &q
			ing.VolumeML = q * teaspoonML
			return ing
		}
	}
	if m := tablespoonRe.FindStringSubmatch(s); m != nil {
		if q, ok := parseQty(m[1]); ok {
			ing.Unit = UnitTeaspoon
			ing.Quantity = &q
			ing.VolumeML = q * tablespoonML
			return ing
		}
	}
	if m := countRe.FindStringSubmatch(s); m != nil {
		if q, ok := parseQty(m[1]); ok {
			ing.Unit = UnitCount
			ing.Quantity = &q
			return ing
		}
	}
	return ing
}

func canonicalKey(raw string) string {
	if key := Normalize(raw); key != "" {
		return key
	}
	if key := Normalize(stripParens(raw)); key != "" {
		return key
	}
	return strings.TrimSpace(fold(raw))
}

// parseQty accepts "1.5", "1,5" and "1/2".
func parseQty(s string) (float64, bool) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	q, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return q, true
}

func toGrams(q float64, unit string) float64 {
	switch {
	case unit == "kg" || strings.HasPrefix(unit, "kilo"):
		return q * 1000
	case unit == "mg":
		return q / 1000
	default:
		return q
	}
}

func toMillilitres(q float64, unit string) float64 {
	switch unit {
	case "cl":
		return q * 10
	case "ml":
		return q
	default:
		return q * 1000
	}
}
