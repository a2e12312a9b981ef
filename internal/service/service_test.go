package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/mealplanner/internal/auth"
	"github.com/mmynk/mealplanner/internal/middleware"
	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/storage/sqlite"
	"github.com/mmynk/mealplanner/pkg/api"
	"github.com/mmynk/mealplanner/pkg/api/apiconnect"
)

const testUserHeader = "X-Test-User"

// testAuthInterceptor authenticates the user named in the X-Test-User header.
// Requests without it are anonymous.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if userID := req.Header().Get(testUserHeader); userID != "" {
				ctx = middleware.WithUser(ctx, userID, userID+"@example.com")
			}
			return next(ctx, req)
		}
	}
}

type testClients struct {
	store   *sqlite.SQLiteStore
	auth    apiconnect.AuthServiceClient
	recipes apiconnect.RecipeServiceClient
	planner apiconnect.PlannerServiceClient
	grocery apiconnect.GroceryServiceClient
}

// setupTestServer serves every service over a temp-file SQLite database.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager("test-secret-key-0123456789", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	testAuth := connect.WithInterceptors(testAuthInterceptor())
	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, logger),
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)),
	))
	mux.Handle(apiconnect.NewRecipeServiceHandler(NewRecipeService(store, logger), testAuth))
	mux.Handle(apiconnect.NewPlannerServiceHandler(NewPlannerService(store, logger), testAuth))
	mux.Handle(apiconnect.NewGroceryServiceHandler(NewGroceryService(store, nil, nil, logger), testAuth))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testClients{
		store:   store,
		auth:    apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		recipes: apiconnect.NewRecipeServiceClient(http.DefaultClient, server.URL),
		planner: apiconnect.NewPlannerServiceClient(http.DefaultClient, server.URL),
		grocery: apiconnect.NewGroceryServiceClient(http.DefaultClient, server.URL),
	}
}

// request builds a request authenticated as userID, or anonymous when empty.
func request[T any](msg *T, userID string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if userID != "" {
		req.Header().Set(testUserHeader, userID)
	}
	return req
}

func createUser(t *testing.T, c *testClients) string {
	t.Helper()
	user := models.NewUser("cook@example.com", "Cook", "hash")
	if err := c.store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user.ID
}

func createRecipe(t *testing.T, c *testClients, userID string, in api.RecipeInput) *api.Recipe {
	t.Helper()
	resp, err := c.recipes.CreateRecipe(context.Background(), request(&api.CreateRecipeRequest{RecipeInput: in}, userID))
	if err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}
	return resp.Msg.Recipe
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %v", err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected code %v, got %v (%v)", want, connectErr.Code(), err)
	}
}

func labels(sections []*api.GrocerySection) map[string][]string {
	out := make(map[string][]string, len(sections))
	for _, s := range sections {
		for _, it := range s.Items {
			out[s.Title] = append(out[s.Title], it.Label)
		}
	}
	return out
}

func titles(sections []*api.GrocerySection) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Title)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
