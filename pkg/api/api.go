// Package api defines the messages exchanged by the mealplanner RPC services.
//
// Messages are plain Go structs encoded as JSON by the codec in apiconnect.
package api

import (
	"encoding/json"
	"fmt"
)

// User is the public view of an account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// Recipe is a catalog recipe.
type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Time        int      `json:"time,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Kcal        float64  `json:"kcal,omitempty"`
	Protein     float64  `json:"protein,omitempty"`
	Carb        float64  `json:"carb,omitempty"`
	Fat         float64  `json:"fat,omitempty"`
	Ingredients []string `json:"ingredients"`
	Vegetarian  bool     `json:"vegetarian"`
	Favorite    bool     `json:"favorite"`
	URL         string   `json:"url,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// IngredientLines accepts either a JSON array of lines or a single string
// holding one line per row.
type IngredientLines []string

func (l *IngredientLines) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*l = lines
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("ingredients must be a string or a list of strings: %w", err)
	}
	*l = IngredientLines{text}
	return nil
}

// RecipeInput is the editable part of a recipe.
type RecipeInput struct {
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle,omitempty"`
	Time        int             `json:"time,omitempty"`
	Difficulty  string          `json:"difficulty,omitempty"`
	Kcal        float64         `json:"kcal,omitempty"`
	Protein     float64         `json:"protein,omitempty"`
	Carb        float64         `json:"carb,omitempty"`
	Fat         float64         `json:"fat,omitempty"`
	Ingredients IngredientLines `json:"ingredients"`
	Vegetarian  bool            `json:"vegetarian"`
	URL         string          `json:"url,omitempty"`
}

type CreateRecipeRequest struct {
	RecipeInput
}

type CreateRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type GetRecipeRequest struct {
	ID string `json:"id"`
}

type GetRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type ListRecipesRequest struct {
	Query         string `json:"query,omitempty"`
	MaxTime       int    `json:"maxTime,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
	FavoritesOnly bool   `json:"favoritesOnly,omitempty"`
}

type ListRecipesResponse struct {
	Recipes []*Recipe `json:"recipes"`
}

type UpdateRecipeRequest struct {
	ID string `json:"id"`
	RecipeInput
}

type UpdateRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type DeleteRecipeRequest struct {
	ID string `json:"id"`
}

type DeleteRecipeResponse struct{}

type ToggleFavoriteRequest struct {
	ID string `json:"id"`
}

type ToggleFavoriteResponse struct {
	Recipe *Recipe `json:"recipe"`
}

// MealSlot is a filled slot of the week.
type MealSlot struct {
	Day    int     `json:"day"`
	Meal   string  `json:"meal"`
	Recipe *Recipe `json:"recipe"`
}

// Nutrition holds weekly totals.
type Nutrition struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"protein"`
	Carb    float64 `json:"carb"`
	Fat     float64 `json:"fat"`
}

type AssignMealRequest struct {
	Day      int    `json:"day"`
	Meal     string `json:"meal"`
	RecipeID string `json:"recipeId"`
}

type AssignMealResponse struct{}

type ClearSlotRequest struct {
	Day  int    `json:"day"`
	Meal string `json:"meal"`
}

type ClearSlotResponse struct{}

type ClearWeekRequest struct{}

type ClearWeekResponse struct{}

type GetWeekRequest struct{}

type GetWeekResponse struct {
	Slots     []*MealSlot `json:"slots"`
	Nutrition *Nutrition  `json:"nutrition"`
}

// GroceryItem is one line of the grocery list.
type GroceryItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// GrocerySection groups grocery items by shop section.
type GrocerySection struct {
	Title string         `json:"title"`
	Items []*GroceryItem `json:"items"`
}

// Override is a learned section assignment.
type Override struct {
	Label     string `json:"label"`
	Section   string `json:"section"`
	CreatedAt int64  `json:"createdAt"`
}

// GenerateListRequest builds the list from RecipeIDs when set, otherwise
// from the caller's weekly plan.
type GenerateListRequest struct {
	RecipeIDs []string `json:"recipeIds,omitempty"`
}

type GenerateListResponse struct {
	Sections []*GrocerySection `json:"sections"`
}

type MoveItemRequest struct {
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type MoveItemResponse struct {
	Moved    bool              `json:"moved"`
	Sections []*GrocerySection `json:"sections"`
}

type ToggleItemRequest struct {
	Section string `json:"section"`
	Label   string `json:"label"`
}

type ToggleItemResponse struct {
	Toggled  bool              `json:"toggled"`
	Sections []*GrocerySection `json:"sections"`
}

type ListOverridesRequest struct{}

type ListOverridesResponse struct {
	Overrides []*Override `json:"overrides"`
}
