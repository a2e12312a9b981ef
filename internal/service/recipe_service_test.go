package service

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/pkg/api"
)

func TestCreateRecipe_Sanitizes(t *testing.T) {
	c := setupTestServer(t)

	recipe := createRecipe(t, c, "alice", api.RecipeInput{
		Title:       "  Gratin de poireaux ",
		Difficulty:  "facile",
		Time:        -5,
		Kcal:        450,
		Ingredients: api.IngredientLines{"3 poireaux\n\n 20 cl crème ", "  ", "100 g gruyère"},
	})

	if recipe.ID == "" {
		t.Fatal("expected an ID")
	}
	if recipe.Title != "Gratin de poireaux" {
		t.Errorf("title: got %q", recipe.Title)
	}
	if recipe.Difficulty != "Facile" {
		t.Errorf("difficulty: got %q, want Facile", recipe.Difficulty)
	}
	if recipe.Time != 0 {
		t.Errorf("time: got %d, want 0", recipe.Time)
	}
	want := []string{"3 poireaux", "20 cl crème", "100 g gruyère"}
	if !equalStrings(recipe.Ingredients, want) {
		t.Errorf("ingredients: got %q, want %q", recipe.Ingredients, want)
	}
}

func TestCreateRecipe_Validation(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	_, err := c.recipes.CreateRecipe(ctx, request(&api.CreateRecipeRequest{RecipeInput: api.RecipeInput{Title: "Soupe"}}, ""))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = c.recipes.CreateRecipe(ctx, request(&api.CreateRecipeRequest{RecipeInput: api.RecipeInput{Title: "   "}}, "alice"))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestRecipeLifecycle(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	soup := createRecipe(t, c, "alice", api.RecipeInput{Title: "Soupe de potiron", Time: 30, Difficulty: "Moyen", Ingredients: api.IngredientLines{"1 potiron"}})
	createRecipe(t, c, "alice", api.RecipeInput{Title: "Pâtes au pesto", Time: 15, Difficulty: "Facile", Ingredients: api.IngredientLines{"200 g pâtes", "pesto"}})

	got, err := c.recipes.GetRecipe(ctx, request(&api.GetRecipeRequest{ID: soup.ID}, ""))
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}
	if got.Msg.Recipe.Title != "Soupe de potiron" {
		t.Errorf("expected soup, got %q", got.Msg.Recipe.Title)
	}

	t.Run("list filters", func(t *testing.T) {
		tests := []struct {
			name string
			req  *api.ListRecipesRequest
			want []string
		}{
			{name: "all, newest first", req: &api.ListRecipesRequest{}, want: []string{"Pâtes au pesto", "Soupe de potiron"}},
			{name: "ingredient query", req: &api.ListRecipesRequest{Query: "PESTO"}, want: []string{"Pâtes au pesto"}},
			{name: "max time", req: &api.ListRecipesRequest{MaxTime: 20}, want: []string{"Pâtes au pesto"}},
			{name: "difficulty prefix", req: &api.ListRecipesRequest{Difficulty: "moyen"}, want: []string{"Soupe de potiron"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp, err := c.recipes.ListRecipes(ctx, request(tt.req, ""))
				if err != nil {
					t.Fatalf("ListRecipes failed: %v", err)
				}
				var names []string
				for _, r := range resp.Msg.Recipes {
					names = append(names, r.Title)
				}
				if !equalStrings(names, tt.want) {
					t.Errorf("got %q, want %q", names, tt.want)
				}
			})
		}
	})

	t.Run("toggle favorite", func(t *testing.T) {
		resp, err := c.recipes.ToggleFavorite(ctx, request(&api.ToggleFavoriteRequest{ID: soup.ID}, "alice"))
		if err != nil {
			t.Fatalf("ToggleFavorite failed: %v", err)
		}
		if !resp.Msg.Recipe.Favorite {
			t.Error("expected favorite")
		}
		list, err := c.recipes.ListRecipes(ctx, request(&api.ListRecipesRequest{FavoritesOnly: true}, ""))
		if err != nil {
			t.Fatalf("ListRecipes failed: %v", err)
		}
		if len(list.Msg.Recipes) != 1 || list.Msg.Recipes[0].ID != soup.ID {
			t.Errorf("expected only the soup, got %d recipes", len(list.Msg.Recipes))
		}
	})

	t.Run("update keeps favorite", func(t *testing.T) {
		resp, err := c.recipes.UpdateRecipe(ctx, request(&api.UpdateRecipeRequest{
			ID:          soup.ID,
			RecipeInput: api.RecipeInput{Title: "Velouté de potiron", Difficulty: "diff", Ingredients: api.IngredientLines{"1 potiron\n20 cl crème"}},
		}, "alice"))
		if err != nil {
			t.Fatalf("UpdateRecipe failed: %v", err)
		}
		r := resp.Msg.Recipe
		if r.Title != "Velouté de potiron" || r.Difficulty != "Difficile" || !r.Favorite {
			t.Errorf("unexpected recipe after update: %+v", r)
		}
		if r.CreatedAt != soup.CreatedAt {
			t.Errorf("created_at changed: %d -> %d", soup.CreatedAt, r.CreatedAt)
		}
		if len(r.Ingredients) != 2 {
			t.Errorf("expected 2 ingredients, got %q", r.Ingredients)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if _, err := c.recipes.DeleteRecipe(ctx, request(&api.DeleteRecipeRequest{ID: soup.ID}, "alice")); err != nil {
			t.Fatalf("DeleteRecipe failed: %v", err)
		}
		_, err := c.recipes.GetRecipe(ctx, request(&api.GetRecipeRequest{ID: soup.ID}, ""))
		assertCode(t, err, connect.CodeNotFound)

		_, err = c.recipes.DeleteRecipe(ctx, request(&api.DeleteRecipeRequest{ID: soup.ID}, "alice"))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestNormalizeDifficulty(t *testing.T) {
	tests := map[string]string{
		"Facile":     "Facile",
		" facilité ": "Facile",
		"MOYENNE":    "Moyen",
		"difficile":  "Difficile",
		"hard":       "",
		"":           "",
	}
	for in, want := range tests {
		if got := normalizeDifficulty(in); got != want {
			t.Errorf("normalizeDifficulty(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFinite(t *testing.T) {
	if finite(math.NaN()) != 0 || finite(math.Inf(1)) != 0 || finite(math.Inf(-1)) != 0 {
		t.Error("expected non-finite values to be dropped")
	}
	if finite(12.5) != 12.5 {
		t.Error("expected finite value to be kept")
	}
}
