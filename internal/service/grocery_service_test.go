package service

import (
	"context"
	"reflect"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/pkg/api"
)

func planGroceries(t *testing.T, c *testClients) (string, []string) {
	t.Helper()
	ctx := context.Background()
	user := createUser(t, c)

	gratin := createRecipe(t, c, user, api.RecipeInput{Title: "Gratin", Ingredients: api.IngredientLines{"3 carottes", "200 g farine", "20 cl lait"}})
	soup := createRecipe(t, c, user, api.RecipeInput{Title: "Soupe", Ingredients: api.IngredientLines{"2 carottes"}})

	for _, a := range []api.AssignMealRequest{
		{Day: 0, Meal: "dinner", RecipeID: gratin.ID},
		{Day: 1, Meal: "lunch", RecipeID: soup.ID},
	} {
		if _, err := c.planner.AssignMeal(ctx, request(&a, user)); err != nil {
			t.Fatalf("AssignMeal failed: %v", err)
		}
	}
	return user, []string{gratin.ID, soup.ID}
}

func TestGenerateList_FromPlan(t *testing.T) {
	c := setupTestServer(t)
	user, _ := planGroceries(t, c)

	resp, err := c.grocery.GenerateList(context.Background(), request(&api.GenerateListRequest{}, user))
	if err != nil {
		t.Fatalf("GenerateList failed: %v", err)
	}

	wantTitles := []string{"Épicerie", "Fruits et légumes", "Produits laitiers"}
	if got := titles(resp.Msg.Sections); !equalStrings(got, wantTitles) {
		t.Errorf("titles: got %q, want %q", got, wantTitles)
	}
	want := map[string][]string{
		"Épicerie":          {"200 g farine"},
		"Fruits et légumes": {"5 carottes (500 g)"},
		"Produits laitiers": {"20 cl lait"},
	}
	if got := labels(resp.Msg.Sections); !reflect.DeepEqual(got, want) {
		t.Errorf("labels: got %v, want %v", got, want)
	}
}

func TestGenerateList_Anonymous(t *testing.T) {
	c := setupTestServer(t)
	_, ids := planGroceries(t, c)
	ctx := context.Background()

	resp, err := c.grocery.GenerateList(ctx, request(&api.GenerateListRequest{RecipeIDs: []string{ids[1], ids[1]}}, ""))
	if err != nil {
		t.Fatalf("GenerateList failed: %v", err)
	}
	want := map[string][]string{"Fruits et légumes": {"4 carottes (400 g)"}}
	if got := labels(resp.Msg.Sections); !reflect.DeepEqual(got, want) {
		t.Errorf("labels: got %v, want %v", got, want)
	}

	empty, err := c.grocery.GenerateList(ctx, request(&api.GenerateListRequest{}, ""))
	if err != nil {
		t.Fatalf("GenerateList failed: %v", err)
	}
	if len(empty.Msg.Sections) != 0 {
		t.Errorf("expected no sections without a plan, got %d", len(empty.Msg.Sections))
	}

	_, err = c.grocery.GenerateList(ctx, request(&api.GenerateListRequest{RecipeIDs: []string{"missing"}}, ""))
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.grocery.MoveItem(ctx, request(&api.MoveItemRequest{Label: "200 g farine", From: "Épicerie", To: "Boulangerie"}, ""))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestMoveItem_LearnsSection(t *testing.T) {
	c := setupTestServer(t)
	user, ids := planGroceries(t, c)
	ctx := context.Background()

	if _, err := c.grocery.GenerateList(ctx, request(&api.GenerateListRequest{}, user)); err != nil {
		t.Fatalf("GenerateList failed: %v", err)
	}

	moved, err := c.grocery.MoveItem(ctx, request(&api.MoveItemRequest{Label: "200 g farine", From: "Épicerie", To: "Boulangerie"}, user))
	if err != nil {
		t.Fatalf("MoveItem failed: %v", err)
	}
	if !moved.Msg.Moved {
		t.Fatal("expected the item to move")
	}
	wantTitles := []string{"Boulangerie", "Fruits et légumes", "Produits laitiers"}
	if got := titles(moved.Msg.Sections); !equalStrings(got, wantTitles) {
		t.Errorf("titles after move: got %q, want %q", got, wantTitles)
	}

	noop, err := c.grocery.MoveItem(ctx, request(&api.MoveItemRequest{Label: "200 g farine", From: "Boulangerie", To: "Boulangerie"}, user))
	if err != nil {
		t.Fatalf("MoveItem failed: %v", err)
	}
	if noop.Msg.Moved {
		t.Error("expected a move to the same section to be a no-op")
	}

	overrides, err := c.grocery.ListOverrides(ctx, request(&api.ListOverridesRequest{}, user))
	if err != nil {
		t.Fatalf("ListOverrides failed: %v", err)
	}
	if len(overrides.Msg.Overrides) != 1 {
		t.Fatalf("expected 1 override, got %d", len(overrides.Msg.Overrides))
	}
	if o := overrides.Msg.Overrides[0]; o.Label != "farine" || o.Section != "Boulangerie" {
		t.Errorf("unexpected override: %+v", o)
	}

	// A list built from explicit recipes uses the learned section too.
	resp, err := c.grocery.GenerateList(ctx, request(&api.GenerateListRequest{RecipeIDs: ids[:1]}, user))
	if err != nil {
		t.Fatalf("GenerateList failed: %v", err)
	}
	got := labels(resp.Msg.Sections)
	if !equalStrings(got["Boulangerie"], []string{"200 g farine"}) {
		t.Errorf("expected farine in Boulangerie, got %v", got)
	}
	if !equalStrings(got["Fruits et légumes"], []string{"3 carottes (300 g)"}) {
		t.Errorf("expected only the gratin carrots, got %v", got)
	}
}

func TestToggleItem(t *testing.T) {
	c := setupTestServer(t)
	user, _ := planGroceries(t, c)
	ctx := context.Background()

	if _, err := c.grocery.GenerateList(ctx, request(&api.GenerateListRequest{}, user)); err != nil {
		t.Fatalf("GenerateList failed: %v", err)
	}

	resp, err := c.grocery.ToggleItem(ctx, request(&api.ToggleItemRequest{Section: "Produits laitiers", Label: "20 cl lait"}, user))
	if err != nil {
		t.Fatalf("ToggleItem failed: %v", err)
	}
	if !resp.Msg.Toggled {
		t.Fatal("expected the item to toggle")
	}
	for _, s := range resp.Msg.Sections {
		for _, it := range s.Items {
			if it.Done != (it.Label == "20 cl lait") {
				t.Errorf("%s: done = %v", it.Label, it.Done)
			}
		}
	}

	missing, err := c.grocery.ToggleItem(ctx, request(&api.ToggleItemRequest{Section: "Boissons", Label: "eau"}, user))
	if err != nil {
		t.Fatalf("ToggleItem failed: %v", err)
	}
	if missing.Msg.Toggled {
		t.Error("expected unknown item not to toggle")
	}

	regenerated, err := c.grocery.GenerateList(ctx, request(&api.GenerateListRequest{}, user))
	if err != nil {
		t.Fatalf("GenerateList failed: %v", err)
	}
	for _, s := range regenerated.Msg.Sections {
		for _, it := range s.Items {
			if it.Done {
				t.Errorf("%s: done flag survived regeneration", it.Label)
			}
		}
	}
}
