// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/mealplanner/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// RecipeStore persists the recipe catalog.
type RecipeStore interface {
	// CreateRecipe persists a new recipe. ID and timestamps are populated
	// by the store when empty.
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error

	// GetRecipe retrieves a recipe by ID, ingredients included.
	// Returns ErrNotFound if the recipe does not exist.
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)

	// GetRecipesByIDs returns the recipes that exist, keyed by ID.
	GetRecipesByIDs(ctx context.Context, ids []string) (map[string]*models.Recipe, error)

	// ListRecipes returns matching recipes, most recently updated first.
	ListRecipes(ctx context.Context, filter RecipeFilter) ([]*models.Recipe, error)

	// UpdateRecipe replaces a recipe. Returns ErrNotFound if it does not exist.
	UpdateRecipe(ctx context.Context, recipe *models.Recipe) error

	// DeleteRecipe removes a recipe and every plan slot referencing it.
	DeleteRecipe(ctx context.Context, id string) error
}

// PlanStore persists each user's weekly meal plan.
type PlanStore interface {
	// SetMealSlot assigns a recipe to a slot, replacing any previous one.
	SetMealSlot(ctx context.Context, slot *models.MealSlot) error

	// ClearMealSlot empties a slot. Clearing an empty slot is not an error.
	ClearMealSlot(ctx context.Context, userID string, day int, meal models.Meal) error

	// ClearWeek empties every slot of the user's week.
	ClearWeek(ctx context.Context, userID string) error

	// ListMealSlots returns the user's filled slots ordered by day then meal.
	ListMealSlots(ctx context.Context, userID string) ([]*models.MealSlot, error)
}

// OverrideStore persists grocery section overrides.
type OverrideStore interface {
	// CreateOverride inserts a new override row. Older rows for the same
	// label are kept; readers take the most recent.
	CreateOverride(ctx context.Context, override *models.Override) error

	// ListOverrides returns the user's overrides, most recent first.
	ListOverrides(ctx context.Context, userID string) ([]*models.Override, error)
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns ErrNotFound for an unknown email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns ErrNotFound for an unknown ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store defines the interface for all storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	RecipeStore
	PlanStore
	OverrideStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
