package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/pkg/api"
)

// GroceryServiceName is the fully-qualified name of the GroceryService.
const GroceryServiceName = "mealplanner.v1.GroceryService"

const (
	GroceryServiceGenerateListProcedure  = "/mealplanner.v1.GroceryService/GenerateList"
	GroceryServiceMoveItemProcedure      = "/mealplanner.v1.GroceryService/MoveItem"
	GroceryServiceToggleItemProcedure    = "/mealplanner.v1.GroceryService/ToggleItem"
	GroceryServiceListOverridesProcedure = "/mealplanner.v1.GroceryService/ListOverrides"
)

// GroceryServiceHandler is implemented by the server side of the GroceryService.
type GroceryServiceHandler interface {
	GenerateList(context.Context, *connect.Request[api.GenerateListRequest]) (*connect.Response[api.GenerateListResponse], error)
	MoveItem(context.Context, *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error)
	ToggleItem(context.Context, *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error)
	ListOverrides(context.Context, *connect.Request[api.ListOverridesRequest]) (*connect.Response[api.ListOverridesResponse], error)
}

// NewGroceryServiceHandler builds an HTTP handler for every GroceryService procedure.
// It returns the path to mount it on.
func NewGroceryServiceHandler(svc GroceryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	generateList := connect.NewUnaryHandler(GroceryServiceGenerateListProcedure, svc.GenerateList, opts...)
	moveItem := connect.NewUnaryHandler(GroceryServiceMoveItemProcedure, svc.MoveItem, opts...)
	toggleItem := connect.NewUnaryHandler(GroceryServiceToggleItemProcedure, svc.ToggleItem, opts...)
	listOverrides := connect.NewUnaryHandler(GroceryServiceListOverridesProcedure, svc.ListOverrides, opts...)
	return "/" + GroceryServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case GroceryServiceGenerateListProcedure:
			generateList.ServeHTTP(w, r)
		case GroceryServiceMoveItemProcedure:
			moveItem.ServeHTTP(w, r)
		case GroceryServiceToggleItemProcedure:
			toggleItem.ServeHTTP(w, r)
		case GroceryServiceListOverridesProcedure:
			listOverrides.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// GroceryServiceClient is a client for the GroceryService.
type GroceryServiceClient interface {
	GenerateList(context.Context, *connect.Request[api.GenerateListRequest]) (*connect.Response[api.GenerateListResponse], error)
	MoveItem(context.Context, *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error)
	ToggleItem(context.Context, *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error)
	ListOverrides(context.Context, *connect.Request[api.ListOverridesRequest]) (*connect.Response[api.ListOverridesResponse], error)
}

// NewGroceryServiceClient constructs a client for the GroceryService at baseURL.
func NewGroceryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroceryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &groceryServiceClient{
		generateList:  connect.NewClient[api.GenerateListRequest, api.GenerateListResponse](httpClient, baseURL+GroceryServiceGenerateListProcedure, opts...),
		moveItem:      connect.NewClient[api.MoveItemRequest, api.MoveItemResponse](httpClient, baseURL+GroceryServiceMoveItemProcedure, opts...),
		toggleItem:    connect.NewClient[api.ToggleItemRequest, api.ToggleItemResponse](httpClient, baseURL+GroceryServiceToggleItemProcedure, opts...),
		listOverrides: connect.NewClient[api.ListOverridesRequest, api.ListOverridesResponse](httpClient, baseURL+GroceryServiceListOverridesProcedure, opts...),
	}
}

type groceryServiceClient struct {
	generateList  *connect.Client[api.GenerateListRequest, api.GenerateListResponse]
	moveItem      *connect.Client[api.MoveItemRequest, api.MoveItemResponse]
	toggleItem    *connect.Client[api.ToggleItemRequest, api.ToggleItemResponse]
	listOverrides *connect.Client[api.ListOverridesRequest, api.ListOverridesResponse]
}

func (c *groceryServiceClient) GenerateList(ctx context.Context, req *connect.Request[api.GenerateListRequest]) (*connect.Response[api.GenerateListResponse], error) {
	return c.generateList.CallUnary(ctx, req)
}

func (c *groceryServiceClient) MoveItem(ctx context.Context, req *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error) {
	return c.moveItem.CallUnary(ctx, req)
}

func (c *groceryServiceClient) ToggleItem(ctx context.Context, req *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error) {
	return c.toggleItem.CallUnary(ctx, req)
}

func (c *groceryServiceClient) ListOverrides(ctx context.Context, req *connect.Request[api.ListOverridesRequest]) (*connect.Response[api.ListOverridesResponse], error) {
	return c.listOverrides.CallUnary(ctx, req)
}
