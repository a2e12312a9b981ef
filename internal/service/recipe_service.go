package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/storage"
	"github.com/mmynk/mealplanner/pkg/api"
)

var errMissingTitle = errors.New("title is required")

// RecipeService implements the RecipeService RPC interface.
// Reads are public; writes need an authenticated user.
type RecipeService struct {
	store  storage.RecipeStore
	logger *slog.Logger
}

// NewRecipeService creates a recipe service over the given store.
func NewRecipeService(store storage.RecipeStore, logger *slog.Logger) *RecipeService {
	return &RecipeService{store: store, logger: logger}
}

// CreateRecipe sanitizes and stores a new recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{}
	if err := applyRecipeInput(recipe, req.Msg.RecipeInput); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err := s.store.CreateRecipe(ctx, recipe); err != nil {
		s.logger.Error("Failed to create recipe", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Recipe created", "user_id", userID, "recipe_id", recipe.ID, "ingredients", len(recipe.Ingredients))
	return connect.NewResponse(&api.CreateRecipeResponse{Recipe: recipeToAPI(recipe)}), nil
}

// GetRecipe returns one recipe.
func (s *RecipeService) GetRecipe(ctx context.Context, req *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error) {
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id is required"))
	}
	recipe, err := s.store.GetRecipe(ctx, req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetRecipeResponse{Recipe: recipeToAPI(recipe)}), nil
}

// ListRecipes returns the recipes matching the request filters.
func (s *RecipeService) ListRecipes(ctx context.Context, req *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error) {
	filter := storage.RecipeFilter{
		Query:         req.Msg.Query,
		MaxTime:       req.Msg.MaxTime,
		Difficulty:    normalizeDifficulty(req.Msg.Difficulty),
		FavoritesOnly: req.Msg.FavoritesOnly,
	}
	recipes, err := s.store.ListRecipes(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list recipes", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, recipeToAPI(r))
	}
	return connect.NewResponse(&api.ListRecipesResponse{Recipes: out}), nil
}

// UpdateRecipe replaces the editable fields of a recipe. The favorite flag
// and creation time are kept.
func (s *RecipeService) UpdateRecipe(ctx context.Context, req *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	recipe, err := s.store.GetRecipe(ctx, req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}
	if err := applyRecipeInput(recipe, req.Msg.RecipeInput); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err := s.store.UpdateRecipe(ctx, recipe); err != nil {
		s.logger.Error("Failed to update recipe", "user_id", userID, "recipe_id", recipe.ID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Recipe updated", "user_id", userID, "recipe_id", recipe.ID)
	return connect.NewResponse(&api.UpdateRecipeResponse{Recipe: recipeToAPI(recipe)}), nil
}

// DeleteRecipe removes a recipe and the plan slots using it.
func (s *RecipeService) DeleteRecipe(ctx context.Context, req *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteRecipe(ctx, req.Msg.ID); err != nil {
		return nil, connectError(err)
	}
	s.logger.Info("Recipe deleted", "user_id", userID, "recipe_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteRecipeResponse{}), nil
}

// ToggleFavorite flips the favorite flag of a recipe.
func (s *RecipeService) ToggleFavorite(ctx context.Context, req *connect.Request[api.ToggleFavoriteRequest]) (*connect.Response[api.ToggleFavoriteResponse], error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	recipe, err := s.store.GetRecipe(ctx, req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}
	recipe.Favorite = !recipe.Favorite
	if err := s.store.UpdateRecipe(ctx, recipe); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.ToggleFavoriteResponse{Recipe: recipeToAPI(recipe)}), nil
}

// applyRecipeInput copies a sanitized payload onto r.
func applyRecipeInput(r *models.Recipe, in api.RecipeInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return errMissingTitle
	}
	r.Title = title
	r.Subtitle = strings.TrimSpace(in.Subtitle)
	r.Time = max(in.Time, 0)
	r.Difficulty = normalizeDifficulty(in.Difficulty)
	r.Kcal = finite(in.Kcal)
	r.Protein = finite(in.Protein)
	r.Carb = finite(in.Carb)
	r.Fat = finite(in.Fat)
	r.Ingredients = cleanIngredients(in.Ingredients)
	r.Vegetarian = in.Vegetarian
	r.URL = strings.TrimSpace(in.URL)
	return nil
}

// cleanIngredients splits multi-line entries, trims every line and drops
// empty ones.
func cleanIngredients(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, entry := range lines {
		for _, line := range strings.Split(entry, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}

// normalizeDifficulty maps free text onto Facile, Moyen or Difficile by
// prefix. Anything else is dropped.
func normalizeDifficulty(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	switch {
	case strings.HasPrefix(d, "facil"):
		return models.DifficultyEasy
	case strings.HasPrefix(d, "moy"):
		return models.DifficultyMedium
	case strings.HasPrefix(d, "diff"):
		return models.DifficultyHard
	default:
		return ""
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
