package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/mealplanner/pkg/api"
)

// PlannerServiceName is the fully-qualified name of the PlannerService.
const PlannerServiceName = "mealplanner.v1.PlannerService"

const (
	PlannerServiceAssignMealProcedure = "/mealplanner.v1.PlannerService/AssignMeal"
	PlannerServiceClearSlotProcedure  = "/mealplanner.v1.PlannerService/ClearSlot"
	PlannerServiceClearWeekProcedure  = "/mealplanner.v1.PlannerService/ClearWeek"
	PlannerServiceGetWeekProcedure    = "/mealplanner.v1.PlannerService/GetWeek"
)

// PlannerServiceHandler is implemented by the server side of the PlannerService.
type PlannerServiceHandler interface {
	AssignMeal(context.Context, *connect.Request[api.AssignMealRequest]) (*connect.Response[api.AssignMealResponse], error)
	ClearSlot(context.Context, *connect.Request[api.ClearSlotRequest]) (*connect.Response[api.ClearSlotResponse], error)
	ClearWeek(context.Context, *connect.Request[api.ClearWeekRequest]) (*connect.Response[api.ClearWeekResponse], error)
	GetWeek(context.Context, *connect.Request[api.GetWeekRequest]) (*connect.Response[api.GetWeekResponse], error)
}

// NewPlannerServiceHandler builds an HTTP handler for every PlannerService procedure.
// It returns the path to mount it on.
func NewPlannerServiceHandler(svc PlannerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	assignMeal := connect.NewUnaryHandler(PlannerServiceAssignMealProcedure, svc.AssignMeal, opts...)
	clearSlot := connect.NewUnaryHandler(PlannerServiceClearSlotProcedure, svc.ClearSlot, opts...)
	clearWeek := connect.NewUnaryHandler(PlannerServiceClearWeekProcedure, svc.ClearWeek, opts...)
	getWeek := connect.NewUnaryHandler(PlannerServiceGetWeekProcedure, svc.GetWeek, opts...)
	return "/" + PlannerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PlannerServiceAssignMealProcedure:
			assignMeal.ServeHTTP(w, r)
		case PlannerServiceClearSlotProcedure:
			clearSlot.ServeHTTP(w, r)
		case PlannerServiceClearWeekProcedure:
			clearWeek.ServeHTTP(w, r)
		case PlannerServiceGetWeekProcedure:
			getWeek.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// PlannerServiceClient is a client for the PlannerService.
type PlannerServiceClient interface {
	AssignMeal(context.Context, *connect.Request[api.AssignMealRequest]) (*connect.Response[api.AssignMealResponse], error)
	ClearSlot(context.Context, *connect.Request[api.ClearSlotRequest]) (*connect.Response[api.ClearSlotResponse], error)
	ClearWeek(context.Context, *connect.Request[api.ClearWeekRequest]) (*connect.Response[api.ClearWeekResponse], error)
	GetWeek(context.Context, *connect.Request[api.GetWeekRequest]) (*connect.Response[api.GetWeekResponse], error)
}

// NewPlannerServiceClient constructs a client for the PlannerService at baseURL.
func NewPlannerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PlannerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &plannerServiceClient{
		assignMeal: connect.NewClient[api.AssignMealRequest, api.AssignMealResponse](httpClient, baseURL+PlannerServiceAssignMealProcedure, opts...),
		clearSlot:  connect.NewClient[api.ClearSlotRequest, api.ClearSlotResponse](httpClient, baseURL+PlannerServiceClearSlotProcedure, opts...),
		clearWeek:  connect.NewClient[api.ClearWeekRequest, api.ClearWeekResponse](httpClient, baseURL+PlannerServiceClearWeekProcedure, opts...),
		getWeek:    connect.NewClient[api.GetWeekRequest, api.GetWeekResponse](httpClient, baseURL+PlannerServiceGetWeekProcedure, opts...),
	}
}

type plannerServiceClient struct {
	assignMeal *connect.Client[api.AssignMealRequest, api.AssignMealResponse]
	clearSlot  *connect.Client[api.ClearSlotRequest, api.ClearSlotResponse]
	clearWeek  *connect.Client[api.ClearWeekRequest, api.ClearWeekResponse]
	getWeek    *connect.Client[api.GetWeekRequest, api.GetWeekResponse]
}

func (c *plannerServiceClient) AssignMeal(ctx context.Context, req *connect.Request[api.AssignMealRequest]) (*connect.Response[api.AssignMealResponse], error) {
	return c.assignMeal.CallUnary(ctx, req)
}

func (c *plannerServiceClient) ClearSlot(ctx context.Context, req *connect.Request[api.ClearSlotRequest]) (*connect.Response[api.ClearSlotResponse], error) {
	return c.clearSlot.CallUnary(ctx, req)
}

func (c *plannerServiceClient) ClearWeek(ctx context.Context, req *connect.Request[api.ClearWeekRequest]) (*connect.Response[api.ClearWeekResponse], error) {
	return c.clearWeek.CallUnary(ctx, req)
}

func (c *plannerServiceClient) GetWeek(ctx context.Context, req *connect.Request[api.GetWeekRequest]) (*connect.Response[api.GetWeekResponse], error) {
	return c.getWeek.CallUnary(ctx, req)
}
