package models

// Difficulty levels accepted for a recipe.
const (
	DifficultyEasy   = "Facile"
	DifficultyMedium = "Moyen"
	DifficultyHard   = "Difficile"
)

// Recipe represents a recipe of the catalog.
type Recipe struct {
	// ID is the unique identifier for the recipe (UUID format).
	ID string

	// Title is the display name of the recipe (e.g., "Gratin de poireaux").
	Title string

	// Subtitle is an optional short description.
	Subtitle string

	// Time is the preparation time in minutes. Zero means unknown.
	Time int

	// Difficulty is one of Facile, Moyen, Difficile, or empty when unknown.
	Difficulty string

	// Kcal, Protein, Carb and Fat are per-serving nutrition values. Zero means unknown.
	Kcal    float64
	Protein float64
	Carb    float64
	Fat     float64

	// Ingredients are the free-text ingredient lines as authored
	// (e.g., "250 g farine", "2 tomates"). Order is preserved.
	Ingredients []string

	// Vegetarian marks meat-free recipes.
	Vegetarian bool

	// Favorite is toggled by the user.
	Favorite bool

	// URL is an optional link to the source of the recipe.
	URL string

	// CreatedAt and UpdatedAt are Unix milliseconds.
	CreatedAt int64
	UpdatedAt int64
}
