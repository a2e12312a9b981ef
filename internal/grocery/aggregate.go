package grocery

// Entry accumulates the quantities seen for one canonical key. A zero field
// means the dimension was never observed.
type Entry struct {
	MassGrams float64
	VolumeML  float64
	Count     float64
}

// Aggregator sums parsed ingredients per canonical key. Dimensions are never
// converted into each other.
type Aggregator struct {
	entries map[string]*Entry
}

func NewAggregator() *Aggregator {
	return &Aggregator{entries: make(map[string]*Entry)}
}

// Add folds one parsed ingredient into its key's entry.
func (a *Aggregator) Add(ing Ingredient) {
	if ing.Key == "" {
		return
	}
	e, ok := a.entries[ing.Key]
	if !ok {
		e = &Entry{}
		a.entries[ing.Key] = e
	}

	switch ing.Unit {
	case UnitMass:
		e.MassGrams += ing.MassGrams
	case UnitVolume, UnitTeaspoon:
		e.VolumeML += ing.VolumeML
	case UnitCount:
		if ing.Quantity != nil {
			e.Count += *ing.Quantity
		} else {
			e.Count++
		}
	default:
		e.Count++
	}
}

// Entries returns the accumulated entries keyed by canonical key.
func (a *Aggregator) Entries() map[string]*Entry {
	return a.entries
}

// Aggregate is a convenience wrapper around Aggregator.
func Aggregate(items []Ingredient) map[string]*Entry {
	a := NewAggregator()
	for _, ing := range items {
		a.Add(ing)
	}
	return a.Entries()
}
