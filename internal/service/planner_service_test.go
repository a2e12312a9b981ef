package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/pkg/api"
)

func TestPlannerService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	user := createUser(t, c)

	salad := createRecipe(t, c, user, api.RecipeInput{Title: "Salade", Kcal: 300, Protein: 10, Carb: 20, Fat: 15})
	curry := createRecipe(t, c, user, api.RecipeInput{Title: "Curry", Kcal: 700, Protein: 30, Carb: 80, Fat: 25})

	assign := func(day int, meal, recipeID string) error {
		_, err := c.planner.AssignMeal(ctx, request(&api.AssignMealRequest{Day: day, Meal: meal, RecipeID: recipeID}, user))
		return err
	}

	if err := assign(2, "dinner", curry.ID); err != nil {
		t.Fatalf("AssignMeal failed: %v", err)
	}
	if err := assign(0, "lunch", salad.ID); err != nil {
		t.Fatalf("AssignMeal failed: %v", err)
	}
	if err := assign(2, "lunch", salad.ID); err != nil {
		t.Fatalf("AssignMeal failed: %v", err)
	}

	t.Run("invalid slots", func(t *testing.T) {
		assertCode(t, assign(7, "lunch", salad.ID), connect.CodeInvalidArgument)
		assertCode(t, assign(-1, "lunch", salad.ID), connect.CodeInvalidArgument)
		assertCode(t, assign(1, "goûter", salad.ID), connect.CodeInvalidArgument)
		assertCode(t, assign(1, "lunch", "missing"), connect.CodeNotFound)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := c.planner.GetWeek(ctx, request(&api.GetWeekRequest{}, ""))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("get week", func(t *testing.T) {
		resp, err := c.planner.GetWeek(ctx, request(&api.GetWeekRequest{}, user))
		if err != nil {
			t.Fatalf("GetWeek failed: %v", err)
		}
		var got []string
		for _, s := range resp.Msg.Slots {
			got = append(got, s.Meal+":"+s.Recipe.Title)
		}
		want := []string{"lunch:Salade", "lunch:Salade", "dinner:Curry"}
		if !equalStrings(got, want) {
			t.Errorf("slots: got %q, want %q", got, want)
		}
		n := resp.Msg.Nutrition
		if n.Kcal != 1300 || n.Protein != 50 || n.Carb != 120 || n.Fat != 55 {
			t.Errorf("unexpected nutrition: %+v", n)
		}
	})

	t.Run("clear slot and week", func(t *testing.T) {
		if _, err := c.planner.ClearSlot(ctx, request(&api.ClearSlotRequest{Day: 2, Meal: "dinner"}, user)); err != nil {
			t.Fatalf("ClearSlot failed: %v", err)
		}
		resp, err := c.planner.GetWeek(ctx, request(&api.GetWeekRequest{}, user))
		if err != nil {
			t.Fatalf("GetWeek failed: %v", err)
		}
		if len(resp.Msg.Slots) != 2 {
			t.Errorf("expected 2 slots, got %d", len(resp.Msg.Slots))
		}

		if _, err := c.planner.ClearWeek(ctx, request(&api.ClearWeekRequest{}, user)); err != nil {
			t.Fatalf("ClearWeek failed: %v", err)
		}
		resp, err = c.planner.GetWeek(ctx, request(&api.GetWeekRequest{}, user))
		if err != nil {
			t.Fatalf("GetWeek failed: %v", err)
		}
		if len(resp.Msg.Slots) != 0 || resp.Msg.Nutrition.Kcal != 0 {
			t.Errorf("expected an empty week, got %d slots", len(resp.Msg.Slots))
		}
	})
}
