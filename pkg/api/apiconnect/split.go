package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/qattah/pkg/api"
)

// SplitServiceName is the fully-qualified name of the SplitService.
const SplitServiceName = "qattah.v1.SplitService"

const (
	SplitServiceCreateSplitProcedure      = "/qattah.v1.SplitService/CreateSplit"
	SplitServiceMarkPaidProcedure         = "/qattah.v1.SplitService/MarkPaid"
	SplitServiceGetSplitGroupProcedure    = "/qattah.v1.SplitService/GetSplitGroup"
	SplitServiceDeleteSplitGroupProcedure = "/qattah.v1.SplitService/DeleteSplitGroup"
)

// SplitServiceHandler is implemented by the split-expense service.
type SplitServiceHandler interface {
	CreateSplit(context.Context, *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error)
	MarkPaid(context.Context, *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error)
	GetSplitGroup(context.Context, *connect.Request[api.GetSplitGroupRequest]) (*connect.Response[api.GetSplitGroupResponse], error)
	DeleteSplitGroup(context.Context, *connect.Request[api.DeleteSplitGroupRequest]) (*connect.Response[api.DeleteSplitGroupResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler for svc and returns the path
// prefix to mount it on.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + SplitServiceName + "/", mux{
		SplitServiceCreateSplitProcedure:      connect.NewUnaryHandler(SplitServiceCreateSplitProcedure, svc.CreateSplit, opts...),
		SplitServiceMarkPaidProcedure:         connect.NewUnaryHandler(SplitServiceMarkPaidProcedure, svc.MarkPaid, opts...),
		SplitServiceGetSplitGroupProcedure:    connect.NewUnaryHandler(SplitServiceGetSplitGroupProcedure, svc.GetSplitGroup, opts...),
		SplitServiceDeleteSplitGroupProcedure: connect.NewUnaryHandler(SplitServiceDeleteSplitGroupProcedure, svc.DeleteSplitGroup, opts...),
	}
}

// SplitServiceClient calls a remote SplitService.
type SplitServiceClient interface {
	CreateSplit(context.Context, *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error)
	MarkPaid(context.Context, *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error)
	GetSplitGroup(context.Context, *connect.Request[api.GetSplitGroupRequest]) (*connect.Response[api.GetSplitGroupResponse], error)
	DeleteSplitGroup(context.Context, *connect.Request[api.DeleteSplitGroupRequest]) (*connect.Response[api.DeleteSplitGroupResponse], error)
}

// NewSplitServiceClient creates a client for the SplitService at baseURL.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &splitServiceClient{
		createSplit:      connect.NewClient[api.CreateSplitRequest, api.CreateSplitResponse](httpClient, baseURL+SplitServiceCreateSplitProcedure, opts...),
		markPaid:         connect.NewClient[api.MarkPaidRequest, api.MarkPaidResponse](httpClient, baseURL+SplitServiceMarkPaidProcedure, opts...),
		getSplitGroup:    connect.NewClient[api.GetSplitGroupRequest, api.GetSplitGroupResponse](httpClient, baseURL+SplitServiceGetSplitGroupProcedure, opts...),
		deleteSplitGroup: connect.NewClient[api.DeleteSplitGroupRequest, api.DeleteSplitGroupResponse](httpClient, baseURL+SplitServiceDeleteSplitGroupProcedure, opts...),
	}
}

type splitServiceClient struct {
	createSplit      *connect.Client[api.CreateSplitRequest, api.CreateSplitResponse]
	markPaid         *connect.Client[api.MarkPaidRequest, api.MarkPaidResponse]
	getSplitGroup    *connect.Client[api.GetSplitGroupRequest, api.GetSplitGroupResponse]
	deleteSplitGroup *connect.Client[api.DeleteSplitGroupRequest, api.DeleteSplitGroupResponse]
}

func (c *splitServiceClient) CreateSplit(ctx context.Context, req *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error) {
	return c.createSplit.CallUnary(ctx, req)
}

func (c *splitServiceClient) MarkPaid(ctx context.Context, req *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error) {
	return c.markPaid.CallUnary(ctx, req)
}

func (c *splitServiceClient) GetSplitGroup(ctx context.Context, req *connect.Request[api.GetSplitGroupRequest]) (*connect.Response[api.GetSplitGroupResponse], error) {
	return c.getSplitGroup.CallUnary(ctx, req)
}

func (c *splitServiceClient) DeleteSplitGroup(ctx context.Context, req *connect.Request[api.DeleteSplitGroupRequest]) (*connect.Response[api.DeleteSplitGroupResponse], error) {
	return c.deleteSplitGroup.CallUnary(ctx, req)
}
