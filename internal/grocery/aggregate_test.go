package grocery

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseAll(raws ...string) []Ingredient {
	out := make([]Ingredient, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Parse(raw))
	}
	return out
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name string
		raws []string
		want map[string]*Entry
	}{
		{
			name: "masses add up",
			raws: []string{"200 g farine", "300 g farine"},
			want: map[string]*Entry{"farine": {MassGrams: 500}},
		},
		{
			name: "counts add up",
			raws: []string{"3 carottes", "2 carottes"},
			want: map[string]*Entry{"carottes": {Count: 5}},
		},
		{
			name: "spoons and volumes share millilitres",
			raws: []string{"1 c. a soupe huile", "2 cl huile"},
			want: map[string]*Entry{"huile": {VolumeML: 35}},
		},
		{
			name: "dimensions are not converted",
			raws: []string{"200 g carottes", "3 carottes"},
			want: map[string]*Entry{"carottes": {MassGrams: 200, Count: 3}},
		},
		{
			name: "no quantity counts as one",
			raws: []string{"sel", "Sel", "1 sel"},
			want: map[string]*Entry{"sel": {Count: 3}},
		},
		{
			name: "distinct keys",
			raws: []string{"1 l lait", "2 oeufs"},
			want: map[string]*Entry{"lait": {VolumeML: 1000}, "oeufs": {Count: 2}},
		},
		{
			name: "empty",
			raws: nil,
			want: map[string]*Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(parseAll(tt.raws...))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	raws := []string{"200 g farine", "3 carottes", "1 l lait", "sel", "300 g farine", "2 carottes", "25 cl lait"}
	forward := Aggregate(parseAll(raws...))

	reversed := slices.Clone(raws)
	slices.Reverse(reversed)
	backward := Aggregate(parseAll(reversed...))

	if diff := cmp.Diff(forward, backward); diff != "" {
		t.Errorf("aggregation depends on order (-forward +backward):\n%s", diff)
	}
}
