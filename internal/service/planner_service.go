package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/planner"
	"github.com/mmynk/mealplanner/pkg/api"
)

// PlannerService implements the PlannerService RPC interface. Every call
// acts on the caller's own week.
type PlannerService struct {
	store  planner.Store
	logger *slog.Logger
}

// NewPlannerService creates a planner service over the given store.
func NewPlannerService(store planner.Store, logger *slog.Logger) *PlannerService {
	return &PlannerService{store: store, logger: logger}
}

func (s *PlannerService) week(ctx context.Context) (*planner.Week, string, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, "", err
	}
	return planner.NewWeek(s.store, userID), userID, nil
}

// AssignMeal puts a recipe in a slot of the week.
func (s *PlannerService) AssignMeal(ctx context.Context, req *connect.Request[api.AssignMealRequest]) (*connect.Response[api.AssignMealResponse], error) {
	week, userID, err := s.week(ctx)
	if err != nil {
		return nil, err
	}
	if err := week.Assign(ctx, req.Msg.Day, models.Meal(req.Msg.Meal), req.Msg.RecipeID); err != nil {
		s.logger.Warn("Failed to assign meal",
			"user_id", userID, "day", req.Msg.Day, "meal", req.Msg.Meal, "recipe_id", req.Msg.RecipeID, "error", err)
		return nil, connectError(err)
	}
	s.logger.Info("Meal assigned", "user_id", userID, "day", req.Msg.Day, "meal", req.Msg.Meal, "recipe_id", req.Msg.RecipeID)
	return connect.NewResponse(&api.AssignMealResponse{}), nil
}

// ClearSlot empties one slot.
func (s *PlannerService) ClearSlot(ctx context.Context, req *connect.Request[api.ClearSlotRequest]) (*connect.Response[api.ClearSlotResponse], error) {
	week, _, err := s.week(ctx)
	if err != nil {
		return nil, err
	}
	if err := week.ClearSlot(ctx, req.Msg.Day, models.Meal(req.Msg.Meal)); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.ClearSlotResponse{}), nil
}

// ClearWeek empties the whole week.
func (s *PlannerService) ClearWeek(ctx context.Context, req *connect.Request[api.ClearWeekRequest]) (*connect.Response[api.ClearWeekResponse], error) {
	week, userID, err := s.week(ctx)
	if err != nil {
		return nil, err
	}
	if err := week.ClearWeek(ctx); err != nil {
		s.logger.Error("Failed to clear week", "user_id", userID, "error", err)
		return nil, connectError(err)
	}
	s.logger.Info("Week cleared", "user_id", userID)
	return connect.NewResponse(&api.ClearWeekResponse{}), nil
}

// GetWeek returns the filled slots and the weekly nutrition totals.
func (s *PlannerService) GetWeek(ctx context.Context, req *connect.Request[api.GetWeekRequest]) (*connect.Response[api.GetWeekResponse], error) {
	week, userID, err := s.week(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := week.Slots(ctx)
	if err != nil {
		s.logger.Error("Failed to load week", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	total := planner.Total(slots)
	return connect.NewResponse(&api.GetWeekResponse{
		Slots: slotsToAPI(slots),
		Nutrition: &api.Nutrition{
			Kcal:    total.Kcal,
			Protein: total.Protein,
			Carb:    total.Carb,
			Fat:     total.Fat,
		},
	}), nil
}
