package models

// Meal identifies a meal of the day.
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
)

// Meals lists the meals of a day in serving order.
var Meals = []Meal{MealBreakfast, MealLunch, MealDinner}

// DaysPerWeek is the number of days in a planned week (0 = Monday).
const DaysPerWeek = 7

// Valid reports whether m is a known meal.
func (m Meal) Valid() bool {
	for _, known := range Meals {
		if m == known {
			return true
		}
	}
	return false
}

// Rank returns the position of m in Meals, or -1 for an unknown meal.
func (m Meal) Rank() int {
	for i, known := range Meals {
		if m == known {
			return i
		}
	}
	return -1
}

// MealSlot is one recipe assigned to a day and meal of a user's week.
type MealSlot struct {
	// UserID owns the plan.
	UserID string

	// Day is the day index in the week, 0 (Monday) to 6 (Sunday).
	Day int

	// Meal is breakfast, lunch or dinner.
	Meal Meal

	// RecipeID references the assigned recipe.
	RecipeID string
}
