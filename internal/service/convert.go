package service

import (
	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/planner"
	"github.com/mmynk/mealplanner/pkg/api"
)

func recipeToAPI(r *models.Recipe) *api.Recipe {
	if r == nil {
		return nil
	}
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return &api.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Time:        r.Time,
		Difficulty:  r.Difficulty,
		Kcal:        r.Kcal,
		Protein:     r.Protein,
		Carb:        r.Carb,
		Fat:         r.Fat,
		Ingredients: ingredients,
		Vegetarian:  r.Vegetarian,
		Favorite:    r.Favorite,
		URL:         r.URL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func userToAPI(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func sectionsToAPI(sections []models.GrocerySection) []*api.GrocerySection {
	out := make([]*api.GrocerySection, 0, len(sections))
	for _, s := range sections {
		items := make([]*api.GroceryItem, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, &api.GroceryItem{Key: it.Key, Label: it.Label, Done: it.Done})
		}
		out = append(out, &api.GrocerySection{Title: s.Title, Items: items})
	}
	return out
}

func slotsToAPI(slots []planner.Slot) []*api.MealSlot {
	out := make([]*api.MealSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, &api.MealSlot{Day: s.Day, Meal: string(s.Meal), Recipe: recipeToAPI(s.Recipe)})
	}
	return out
}
