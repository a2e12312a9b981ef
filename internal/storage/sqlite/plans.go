package sqlite

import (
	"context"
	"fmt"
	"sort"

	"github.com/mmynk/mealplanner/internal/models"
)

// SetMealSlot assigns a recipe to a day and meal, replacing any previous assignment.
func (s *SQLiteStore) SetMealSlot(ctx context.Context, slot *models.MealSlot) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meal_plans (user_id, day, meal, recipe_id) VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, day, meal) DO UPDATE SET recipe_id = excluded.recipe_id`,
		slot.UserID, slot.Day, string(slot.Meal), slot.RecipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to set meal slot: %w", err)
	}
	return nil
}

// ClearMealSlot removes the assignment of one slot.
func (s *SQLiteStore) ClearMealSlot(ctx context.Context, userID string, day int, meal models.Meal) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM meal_plans WHERE user_id = ? AND day = ? AND meal = ?",
		userID, day, string(meal),
	)
	if err != nil {
		return fmt.Errorf("failed to clear meal slot: %w", err)
	}
	return nil
}

// ClearWeek removes every assignment of the user.
func (s *SQLiteStore) ClearWeek(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM meal_plans WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to clear week: %w", err)
	}
	return nil
}

// ListMealSlots returns the user's filled slots ordered by day, then by meal
// in serving order.
func (s *SQLiteStore) ListMealSlots(ctx context.Context, userID string) ([]*models.MealSlot, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, day, meal, recipe_id FROM meal_plans WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal slots: %w", err)
	}
	defer rows.Close()

	var slots []*models.MealSlot
	for rows.Next() {
		slot := &models.MealSlot{}
		var meal string
		if err := rows.Scan(&slot.UserID, &slot.Day, &meal, &slot.RecipeID); err != nil {
			return nil, fmt.Errorf("failed to scan meal slot: %w", err)
		}
		slot.Meal = models.Meal(meal)
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal slots: %w", err)
	}

	// Meal order is not alphabetical, so sort here rather than in SQL.
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return slots[i].Day < slots[j].Day
		}
		return slots[i].Meal.Rank() < slots[j].Meal.Rank()
	})
	return slots, nil
}
