package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/internal/grocery"
	"github.com/mmynk/mealplanner/internal/metrics"
	"github.com/mmynk/mealplanner/internal/middleware"
	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/planner"
	"github.com/mmynk/mealplanner/internal/storage"
	"github.com/mmynk/mealplanner/pkg/api"
)

// GroceryStore is the persistence the grocery service needs.
type GroceryStore interface {
	planner.Store
	storage.OverrideStore
}

// GroceryService implements the GroceryService RPC interface.
//
// Each authenticated user owns one grocery.Builder kept for the life of the
// process, so moves and done flags apply to the list they last generated.
// Calls for one user are serialized. Anonymous callers get a throwaway
// builder that neither reads nor writes overrides.
type GroceryService struct {
	store   GroceryStore
	catalog *grocery.Catalog
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*grocerySession
}

type grocerySession struct {
	mu      sync.Mutex
	source  *sessionSource
	builder *grocery.Builder
}

// sessionSource reads the user's week unless explicit recipes were asked for.
type sessionSource struct {
	week     *planner.Week
	explicit grocery.RecipeList
}

func (s *sessionSource) AllRecipes(ctx context.Context) ([]models.Recipe, error) {
	if s.explicit != nil {
		return s.explicit, nil
	}
	return s.week.AllRecipes(ctx)
}

// NewGroceryService creates a grocery service. A nil catalog uses the
// embedded default; a nil metrics disables instrumentation.
func NewGroceryService(store GroceryStore, catalog *grocery.Catalog, m *metrics.Metrics, logger *slog.Logger) *GroceryService {
	if catalog == nil {
		catalog = grocery.DefaultCatalog()
	}
	return &GroceryService{
		store:    store,
		catalog:  catalog,
		metrics:  m,
		logger:   logger,
		sessions: make(map[string]*grocerySession),
	}
}

func (s *GroceryService) builderOptions() []grocery.Option {
	return []grocery.Option{
		grocery.WithCatalog(s.catalog),
		grocery.WithLogger(s.logger),
		grocery.WithMetrics(s.metrics),
	}
}

// session returns the user's session, locked. Callers must unlock it.
func (s *GroceryService) session(userID string) *grocerySession {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if !ok {
		source := &sessionSource{week: planner.NewWeek(s.store, userID)}
		sess = &grocerySession{
			source:  source,
			builder: grocery.NewBuilder(source, s.store, grocery.UserID(userID), s.builderOptions()...),
		}
		s.sessions[userID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	return sess
}

// GenerateList builds the grocery list from the given recipes, or from the
// caller's week when none are given.
func (s *GroceryService) GenerateList(ctx context.Context, req *connect.Request[api.GenerateListRequest]) (*connect.Response[api.GenerateListResponse], error) {
	userID := middleware.GetUserID(ctx)
	s.logger.Info("GenerateList request", "user_id", userID, "recipe_ids", len(req.Msg.RecipeIDs))

	var explicit grocery.RecipeList
	if len(req.Msg.RecipeIDs) > 0 {
		recipes, err := s.resolveRecipes(ctx, req.Msg.RecipeIDs)
		if err != nil {
			return nil, connectError(err)
		}
		explicit = recipes
	}

	if userID == "" {
		builder := grocery.NewBuilder(explicit, nil, nil, s.builderOptions()...)
		sections, err := builder.Generate(ctx)
		if err != nil {
			return nil, connectError(err)
		}
		return connect.NewResponse(&api.GenerateListResponse{Sections: sectionsToAPI(sections)}), nil
	}

	sess := s.session(userID)
	defer sess.mu.Unlock()

	sess.source.explicit = explicit
	sections, err := sess.builder.Generate(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GenerateListResponse{Sections: sectionsToAPI(sections)}), nil
}

// resolveRecipes loads recipes in request order. Repeated IDs repeat the recipe.
func (s *GroceryService) resolveRecipes(ctx context.Context, ids []string) (grocery.RecipeList, error) {
	byID, err := s.store.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	out := make(grocery.RecipeList, 0, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
		}
		out = append(out, *r)
	}
	return out, nil
}

// MoveItem moves an item to another section and remembers the choice.
func (s *GroceryService) MoveItem(ctx context.Context, req *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Label == "" || req.Msg.To == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("label and target section are required"))
	}

	sess := s.session(userID)
	defer sess.mu.Unlock()

	if len(sess.builder.Sections()) == 0 {
		if _, err := sess.builder.Generate(ctx); err != nil {
			return nil, connectError(err)
		}
	}

	moved := sess.builder.MoveItem(ctx, req.Msg.Label, req.Msg.From, req.Msg.To)
	s.logger.Info("MoveItem request",
		"user_id", userID, "label", req.Msg.Label, "from", req.Msg.From, "to", req.Msg.To, "moved", moved)
	return connect.NewResponse(&api.MoveItemResponse{
		Moved:    moved,
		Sections: sectionsToAPI(sess.builder.Sections()),
	}), nil
}

// ToggleItem flips the done flag of an item of the caller's last list.
func (s *GroceryService) ToggleItem(ctx context.Context, req *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	sess := s.session(userID)
	defer sess.mu.Unlock()

	toggled := sess.builder.ToggleItem(req.Msg.Section, req.Msg.Label)
	return connect.NewResponse(&api.ToggleItemResponse{
		Toggled:  toggled,
		Sections: sectionsToAPI(sess.builder.Sections()),
	}), nil
}

// ListOverrides returns the caller's learned sections, most recent first.
func (s *GroceryService) ListOverrides(ctx context.Context, req *connect.Request[api.ListOverridesRequest]) (*connect.Response[api.ListOverridesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.ListOverrides(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list overrides", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Override, 0, len(rows))
	for _, o := range rows {
		out = append(out, &api.Override{Label: o.Label, Section: o.Section, CreatedAt: o.CreatedAt})
	}
	return connect.NewResponse(&api.ListOverridesResponse{Overrides: out}), nil
}
