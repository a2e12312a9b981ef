// Package planner manages a user's week of meals and exposes it as the
// recipe source of the grocery list.
package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/storage"
)

var (
	ErrInvalidDay  = errors.New("day must be between 0 and 6")
	ErrInvalidMeal = errors.New("meal must be breakfast, lunch or dinner")
)

// Store is the persistence the planner needs.
type Store interface {
	storage.PlanStore
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)
	GetRecipesByIDs(ctx context.Context, ids []string) (map[string]*models.Recipe, error)
}

// Slot is a filled meal slot with its recipe.
type Slot struct {
	Day    int
	Meal   models.Meal
	Recipe *models.Recipe
}

// Nutrition is the sum of the nutrition values of every planned meal.
type Nutrition struct {
	Kcal    float64
	Protein float64
	Carb    float64
	Fat     float64
}

// Week is one user's meal plan.
type Week struct {
	store  Store
	userID string
}

func NewWeek(store Store, userID string) *Week {
	return &Week{store: store, userID: userID}
}

// ValidateSlot checks a day index and meal name.
func ValidateSlot(day int, meal models.Meal) error {
	if day < 0 || day >= models.DaysPerWeek {
		return fmt.Errorf("%w: got %d", ErrInvalidDay, day)
	}
	if !meal.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidMeal, meal)
	}
	return nil
}

// Assign puts a recipe in a slot. The recipe must exist.
func (w *Week) Assign(ctx context.Context, day int, meal models.Meal, recipeID string) error {
	if err := ValidateSlot(day, meal); err != nil {
		return err
	}
	if _, err := w.store.GetRecipe(ctx, recipeID); err != nil {
		return err
	}
	return w.store.SetMealSlot(ctx, &models.MealSlot{
		UserID:   w.userID,
		Day:      day,
		Meal:     meal,
		RecipeID: recipeID,
	})
}

// ClearSlot empties one slot.
func (w *Week) ClearSlot(ctx context.Context, day int, meal models.Meal) error {
	if err := ValidateSlot(day, meal); err != nil {
		return err
	}
	return w.store.ClearMealSlot(ctx, w.userID, day, meal)
}

// ClearWeek empties every slot.
func (w *Week) ClearWeek(ctx context.Context) error {
	return w.store.ClearWeek(ctx, w.userID)
}

// Slots returns the filled slots ordered by day then meal. Slots whose
// recipe has disappeared are skipped.
func (w *Week) Slots(ctx context.Context) ([]Slot, error) {
	rows, err := w.store.ListMealSlots(ctx, w.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal slots: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.RecipeID)
	}
	recipes, err := w.store.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load planned recipes: %w", err)
	}

	slots := make([]Slot, 0, len(rows))
	for _, r := range rows {
		recipe, ok := recipes[r.RecipeID]
		if !ok {
			continue
		}
		slots = append(slots, Slot{Day: r.Day, Meal: r.Meal, Recipe: recipe})
	}
	return slots, nil
}

// AllRecipes returns the planned recipes in plan order. A recipe planned
// twice appears twice so its ingredients count twice.
func (w *Week) AllRecipes(ctx context.Context) ([]models.Recipe, error) {
	slots, err := w.Slots(ctx)
	if err != nil {
		return nil, err
	}
	recipes := make([]models.Recipe, 0, len(slots))
	for _, s := range slots {
		recipes = append(recipes, *s.Recipe)
	}
	return recipes, nil
}

// Nutrition sums the nutrition of every planned meal.
func (w *Week) Nutrition(ctx context.Context) (Nutrition, error) {
	slots, err := w.Slots(ctx)
	if err != nil {
		return Nutrition{}, err
	}
	return Total(slots), nil
}

// Total sums the nutrition of slots.
func Total(slots []Slot) Nutrition {
	var n Nutrition
	for _, s := range slots {
		n.Kcal += s.Recipe.Kcal
		n.Protein += s.Recipe.Protein
		n.Carb += s.Recipe.Carb
		n.Fat += s.Recipe.Fat
	}
	return n
}
