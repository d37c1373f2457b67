package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/qattah/pkg/api"
)

// InsightsServiceName is the fully-qualified name of the InsightsService.
const InsightsServiceName = "qattah.v1.InsightsService"

const (
	InsightsServiceGetSpendingSummaryProcedure = "/qattah.v1.InsightsService/GetSpendingSummary"
	InsightsServiceGeneratePlanProcedure       = "/qattah.v1.InsightsService/GeneratePlan"
)

// InsightsServiceHandler is implemented by the spending-analysis service.
type InsightsServiceHandler interface {
	GetSpendingSummary(context.Context, *connect.Request[api.SpendingSummaryRequest]) (*connect.Response[api.SpendingSummary], error)
	GeneratePlan(context.Context, *connect.Request[api.GeneratePlanRequest]) (*connect.Response[api.GeneratePlanResponse], error)
}

// NewInsightsServiceHandler builds an HTTP handler for svc and returns the
// path prefix to mount it on.
func NewInsightsServiceHandler(svc InsightsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + InsightsServiceName + "/", mux{
		InsightsServiceGetSpendingSummaryProcedure: connect.NewUnaryHandler(InsightsServiceGetSpendingSummaryProcedure, svc.GetSpendingSummary, opts...),
		InsightsServiceGeneratePlanProcedure:       connect.NewUnaryHandler(InsightsServiceGeneratePlanProcedure, svc.GeneratePlan, opts...),
	}
}

// InsightsServiceClient calls a remote InsightsService.
type InsightsServiceClient interface {
	GetSpendingSummary(context.Context, *connect.Request[api.SpendingSummaryRequest]) (*connect.Response[api.SpendingSummary], error)
	GeneratePlan(context.Context, *connect.Request[api.GeneratePlanRequest]) (*connect.Response[api.GeneratePlanResponse], error)
}

// NewInsightsServiceClient creates a client for the InsightsService at baseURL.
func NewInsightsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) InsightsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &insightsServiceClient{
		getSpendingSummary: connect.NewClient[api.SpendingSummaryRequest, api.SpendingSummary](httpClient, baseURL+InsightsServiceGetSpendingSummaryProcedure, opts...),
		generatePlan:       connect.NewClient[api.GeneratePlanRequest, api.GeneratePlanResponse](httpClient, baseURL+InsightsServiceGeneratePlanProcedure, opts...),
	}
}

type insightsServiceClient struct {
	getSpendingSummary *connect.Client[api.SpendingSummaryRequest, api.SpendingSummary]
	generatePlan       *connect.Client[api.GeneratePlanRequest, api.GeneratePlanResponse]
}

func (c *insightsServiceClient) GetSpendingSummary(ctx context.Context, req *connect.Request[api.SpendingSummaryRequest]) (*connect.Response[api.SpendingSummary], error) {
	return c.getSpendingSummary.CallUnary(ctx, req)
}

func (c *insightsServiceClient) GeneratePlan(ctx context.Context, req *connect.Request[api.GeneratePlanRequest]) (*connect.Response[api.GeneratePlanResponse], error) {
	return c.generatePlan.CallUnary(ctx, req)
}
