package storage

import (
	"strings"

	"github.com/mmynk/mealplanner/internal/models"
)

// RecipeFilter narrows ListRecipes. Zero values disable a criterion.
type RecipeFilter struct {
	// Query matches the title, the subtitle or any ingredient, ignoring case.
	Query string

	// MaxTime keeps recipes taking at most this many minutes.
	MaxTime int

	// Difficulty keeps recipes with exactly this difficulty.
	Difficulty string

	// FavoritesOnly keeps favorite recipes.
	FavoritesOnly bool
}

// Matches reports whether r passes every enabled criterion.
func (f RecipeFilter) Matches(r *models.Recipe) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !containsFold(r.Title, q) && !containsFold(r.Subtitle, q) && !anyContainsFold(r.Ingredients, q) {
			return false
		}
	}
	if f.MaxTime > 0 && r.Time > f.MaxTime {
		return false
	}
	if f.Difficulty != "" && r.Difficulty != f.Difficulty {
		return false
	}
	if f.FavoritesOnly && !r.Favorite {
		return false
	}
	return true
}

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

func anyContainsFold(values []string, lowerQuery string) bool {
	for _, v := range values {
		if containsFold(v, lowerQuery) {
			return true
		}
	}
	return false
}
