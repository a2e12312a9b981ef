package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/storage"
)

const recipeColumns = `id, title, subtitle, time, difficulty, kcal, protein, carb, fat,
	vegetarian, favorite, url, created_at, updated_at`

// CreateRecipe persists a new recipe with its ingredient lines.
func (s *SQLiteStore) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	now := time.Now().UnixMilli()
	if recipe.CreatedAt == 0 {
		recipe.CreatedAt = now
	}
	if recipe.UpdatedAt == 0 {
		recipe.UpdatedAt = recipe.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO recipes (`+recipeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.ID, recipe.Title, recipe.Subtitle, recipe.Time, recipe.Difficulty,
		recipe.Kcal, recipe.Protein, recipe.Carb, recipe.Fat,
		boolToInt(recipe.Vegetarian), boolToInt(recipe.Favorite), recipe.URL,
		recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}

	if err := insertIngredients(ctx, tx, recipe.ID, recipe.Ingredients); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateRecipe replaces every field and the ingredient lines of a recipe.
func (s *SQLiteStore) UpdateRecipe(ctx context.Context, recipe *models.Recipe) error {
	recipe.UpdatedAt = time.Now().UnixMilli()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE recipes
		SET title = ?, subtitle = ?, time = ?, difficulty = ?, kcal = ?, protein = ?, carb = ?, fat = ?,
			vegetarian = ?, favorite = ?, url = ?, updated_at = ?
		WHERE id = ?`,
		recipe.Title, recipe.Subtitle, recipe.Time, recipe.Difficulty,
		recipe.Kcal, recipe.Protein, recipe.Carb, recipe.Fat,
		boolToInt(recipe.Vegetarian), boolToInt(recipe.Favorite), recipe.URL,
		recipe.UpdatedAt, recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("recipe %s: %w", recipe.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_ingredients WHERE recipe_id = ?", recipe.ID); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}
	if err := insertIngredients(ctx, tx, recipe.ID, recipe.Ingredients); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteRecipe removes a recipe. Ingredients and plan slots cascade.
func (s *SQLiteStore) DeleteRecipe(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// GetRecipe retrieves a recipe by ID, including its ingredient lines.
func (s *SQLiteStore) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recipeColumns+" FROM recipes WHERE id = ?", id)
	recipe, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	if err := s.attachIngredients(ctx, []*models.Recipe{recipe}); err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipesByIDs retrieves multiple recipes by their IDs.
// Recipes that don't exist are omitted from the result.
func (s *SQLiteStore) GetRecipesByIDs(ctx context.Context, ids []string) (map[string]*models.Recipe, error) {
	result := make(map[string]*models.Recipe)
	if len(ids) == 0 {
		return result, nil
	}

	recipes, err := s.queryRecipes(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE id IN ("+placeholders(len(ids))+")",
		stringArgs(ids)...,
	)
	if err != nil {
		return nil, err
	}
	for _, r := range recipes {
		result[r.ID] = r
	}
	return result, nil
}

// ListRecipes returns the recipes matching filter, most recently updated first.
func (s *SQLiteStore) ListRecipes(ctx context.Context, filter storage.RecipeFilter) ([]*models.Recipe, error) {
	all, err := s.queryRecipes(ctx,
		"SELECT "+recipeColumns+" FROM recipes ORDER BY updated_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, err
	}

	recipes := make([]*models.Recipe, 0, len(all))
	for _, r := range all {
		if filter.Matches(r) {
			recipes = append(recipes, r)
		}
	}
	return recipes, nil
}

// queryRecipes runs a recipe SELECT and fills in ingredients.
func (s *SQLiteStore) queryRecipes(ctx context.Context, query string, args ...any) ([]*models.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*models.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	rows.Close()

	if err := s.attachIngredients(ctx, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// attachIngredients loads the ingredient lines of recipes in one query.
func (s *SQLiteStore) attachIngredients(ctx context.Context, recipes []*models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	byID := make(map[string]*models.Recipe, len(recipes))
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
		ids = append(ids, r.ID)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT recipe_id, text FROM recipe_ingredients WHERE recipe_id IN ("+placeholders(len(ids))+") ORDER BY recipe_id, position",
		stringArgs(ids)...,
	)
	if err != nil {
		return fmt.Errorf("failed to get ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipeID, text string
		if err := rows.Scan(&recipeID, &text); err != nil {
			return fmt.Errorf("failed to scan ingredient: %w", err)
		}
		if r, ok := byID[recipeID]; ok {
			r.Ingredients = append(r.Ingredients, text)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate ingredients: %w", err)
	}
	return nil
}

func insertIngredients(ctx context.Context, tx *sql.Tx, recipeID string, ingredients []string) error {
	for i, text := range ingredients {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO recipe_ingredients (recipe_id, position, text) VALUES (?, ?, ?)",
			recipeID, i, text,
		)
		if err != nil {
			return fmt.Errorf("failed to insert ingredient: %w", err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row scanner) (*models.Recipe, error) {
	r := &models.Recipe{}
	var vegetarian, favorite int
	err := row.Scan(
		&r.ID, &r.Title, &r.Subtitle, &r.Time, &r.Difficulty,
		&r.Kcal, &r.Protein, &r.Carb, &r.Fat,
		&vegetarian, &favorite, &r.URL,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Vegetarian = vegetarian != 0
	r.Favorite = favorite != 0
	return r, nil
}
