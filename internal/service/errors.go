package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/internal/auth"
	"github.com/mmynk/mealplanner/internal/middleware"
	"github.com/mmynk/mealplanner/internal/planner"
	"github.com/mmynk/mealplanner/internal/storage"
)

// connectError maps domain errors to Connect codes.
func connectError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, planner.ErrInvalidDay), errors.Is(err, planner.ErrInvalidMeal):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// requireUser returns the authenticated user ID or an Unauthenticated error.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}
