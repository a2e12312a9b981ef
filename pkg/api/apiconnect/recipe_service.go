package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/pkg/api"
)

// RecipeServiceName is the fully-qualified name of the RecipeService.
const RecipeServiceName = "mealplanner.v1.RecipeService"

const (
	RecipeServiceCreateRecipeProcedure   = "/mealplanner.v1.RecipeService/CreateRecipe"
	RecipeServiceGetRecipeProcedure      = "/mealplanner.v1.RecipeService/GetRecipe"
	RecipeServiceListRecipesProcedure    = "/mealplanner.v1.RecipeService/ListRecipes"
	RecipeServiceUpdateRecipeProcedure   = "/mealplanner.v1.RecipeService/UpdateRecipe"
	RecipeServiceDeleteRecipeProcedure   = "/mealplanner.v1.RecipeService/DeleteRecipe"
	RecipeServiceToggleFavoriteProcedure = "/mealplanner.v1.RecipeService/ToggleFavorite"
)

// RecipeServiceHandler is implemented by the server side of the RecipeService.
type RecipeServiceHandler interface {
	CreateRecipe(context.Context, *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error)
	GetRecipe(context.Context, *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error)
	ListRecipes(context.Context, *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error)
	UpdateRecipe(context.Context, *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error)
	DeleteRecipe(context.Context, *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error)
	ToggleFavorite(context.Context, *connect.Request[api.ToggleFavoriteRequest]) (*connect.Response[api.ToggleFavoriteResponse], error)
}

// NewRecipeServiceHandler builds an HTTP handler for every RecipeService procedure.
// It returns the path to mount it on.
func NewRecipeServiceHandler(svc RecipeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createRecipe := connect.NewUnaryHandler(RecipeServiceCreateRecipeProcedure, svc.CreateRecipe, opts...)
	getRecipe := connect.NewUnaryHandler(RecipeServiceGetRecipeProcedure, svc.GetRecipe, opts...)
	listRecipes := connect.NewUnaryHandler(RecipeServiceListRecipesProcedure, svc.ListRecipes, opts...)
	updateRecipe := connect.NewUnaryHandler(RecipeServiceUpdateRecipeProcedure, svc.UpdateRecipe, opts...)
	deleteRecipe := connect.NewUnaryHandler(RecipeServiceDeleteRecipeProcedure, svc.DeleteRecipe, opts...)
	toggleFavorite := connect.NewUnaryHandler(RecipeServiceToggleFavoriteProcedure, svc.ToggleFavorite, opts...)
	return "/" + RecipeServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RecipeServiceCreateRecipeProcedure:
			createRecipe.ServeHTTP(w, r)
		case RecipeServiceGetRecipeProcedure:
			getRecipe.ServeHTTP(w, r)
		case RecipeServiceListRecipesProcedure:
			listRecipes.ServeHTTP(w, r)
		case RecipeServiceUpdateRecipeProcedure:
			updateRecipe.ServeHTTP(w, r)
		case RecipeServiceDeleteRecipeProcedure:
			deleteRecipe.ServeHTTP(w, r)
		case RecipeServiceToggleFavoriteProcedure:
			toggleFavorite.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// RecipeServiceClient is a client for the RecipeService.
type RecipeServiceClient interface {
	CreateRecipe(context.Context, *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error)
	GetRecipe(context.Context, *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error)
	ListRecipes(context.Context, *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error)
	UpdateRecipe(context.Context, *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error)
	DeleteRecipe(context.Context, *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error)
	ToggleFavorite(context.Context, *connect.Request[api.ToggleFavoriteRequest]) (*connect.Response[api.ToggleFavoriteResponse], error)
}

// NewRecipeServiceClient constructs a client for the RecipeService at baseURL.
func NewRecipeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RecipeServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &recipeServiceClient{
		createRecipe:   connect.NewClient[api.CreateRecipeRequest, api.CreateRecipeResponse](httpClient, baseURL+RecipeServiceCreateRecipeProcedure, opts...),
		getRecipe:      connect.NewClient[api.GetRecipeRequest, api.GetRecipeResponse](httpClient, baseURL+RecipeServiceGetRecipeProcedure, opts...),
		listRecipes:    connect.NewClient[api.ListRecipesRequest, api.ListRecipesResponse](httpClient, baseURL+RecipeServiceListRecipesProcedure, opts...),
		updateRecipe:   connect.NewClient[api.UpdateRecipeRequest, api.UpdateRecipeResponse](httpClient, baseURL+RecipeServiceUpdateRecipeProcedure, opts...),
		deleteRecipe:   connect.NewClient[api.DeleteRecipeRequest, api.DeleteRecipeResponse](httpClient, baseURL+RecipeServiceDeleteRecipeProcedure, opts...),
		toggleFavorite: connect.NewClient[api.ToggleFavoriteRequest, api.ToggleFavoriteResponse](httpClient, baseURL+RecipeServiceToggleFavoriteProcedure, opts...),
	}
}

type recipeServiceClient struct {
	createRecipe   *connect.Client[api.CreateRecipeRequest, api.CreateRecipeResponse]
	getRecipe      *connect.Client[api.GetRecipeRequest, api.GetRecipeResponse]
	listRecipes    *connect.Client[api.ListRecipesRequest, api.ListRecipesResponse]
	updateRecipe   *connect.Client[api.UpdateRecipeRequest, api.UpdateRecipeResponse]
	deleteRecipe   *connect.Client[api.DeleteRecipeRequest, api.DeleteRecipeResponse]
	toggleFavorite *connect.Client[api.ToggleFavoriteRequest, api.ToggleFavoriteResponse]
}

func (c *recipeServiceClient) CreateRecipe(ctx context.Context, req *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error) {
	return c.createRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) GetRecipe(ctx context.Context, req *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error) {
	return c.getRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) ListRecipes(ctx context.Context, req *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error) {
	return c.listRecipes.CallUnary(ctx, req)
}

func (c *recipeServiceClient) UpdateRecipe(ctx context.Context, req *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error) {
	return c.updateRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) DeleteRecipe(ctx context.Context, req *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error) {
	return c.deleteRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) ToggleFavorite(ctx context.Context, req *connect.Request[api.ToggleFavoriteRequest]) (*connect.Response[api.ToggleFavoriteResponse], error) {
	return c.toggleFavorite.CallUnary(ctx, req)
}
