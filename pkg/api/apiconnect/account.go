package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/qattah/pkg/api"
)

// AccountServiceName is the fully-qualified name of the AccountService.
const AccountServiceName = "qattah.v1.AccountService"

const (
	AccountServiceCreateUserProcedure        = "/qattah.v1.AccountService/CreateUser"
	AccountServiceGetUserProcedure           = "/qattah.v1.AccountService/GetUser"
	AccountServiceUpdateUserProcedure        = "/qattah.v1.AccountService/UpdateUser"
	AccountServiceDeleteUserProcedure        = "/qattah.v1.AccountService/DeleteUser"
	AccountServiceCreateTransactionProcedure = "/qattah.v1.AccountService/CreateTransaction"
	AccountServiceNotifyUserProcedure        = "/qattah.v1.AccountService/NotifyUser"
)

// AccountServiceHandler is implemented by the user and plain-transaction service.
type AccountServiceHandler interface {
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.UserResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.UserResponse], error)
	UpdateUser(context.Context, *connect.Request[api.UpdateUserRequest]) (*connect.Response[api.UserResponse], error)
	DeleteUser(context.Context, *connect.Request[api.DeleteUserRequest]) (*connect.Response[api.DeleteUserResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	NotifyUser(context.Context, *connect.Request[api.NotifyUserRequest]) (*connect.Response[api.NotifyUserResponse], error)
}

// NewAccountServiceHandler builds an HTTP handler for svc and returns the
// path prefix to mount it on.
func NewAccountServiceHandler(svc AccountServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AccountServiceName + "/", mux{
		AccountServiceCreateUserProcedure:        connect.NewUnaryHandler(AccountServiceCreateUserProcedure, svc.CreateUser, opts...),
		AccountServiceGetUserProcedure:           connect.NewUnaryHandler(AccountServiceGetUserProcedure, svc.GetUser, opts...),
		AccountServiceUpdateUserProcedure:        connect.NewUnaryHandler(AccountServiceUpdateUserProcedure, svc.UpdateUser, opts...),
		AccountServiceDeleteUserProcedure:        connect.NewUnaryHandler(AccountServiceDeleteUserProcedure, svc.DeleteUser, opts...),
		AccountServiceCreateTransactionProcedure: connect.NewUnaryHandler(AccountServiceCreateTransactionProcedure, svc.CreateTransaction, opts...),
		AccountServiceNotifyUserProcedure:        connect.NewUnaryHandler(AccountServiceNotifyUserProcedure, svc.NotifyUser, opts...),
	}
}

// AccountServiceClient calls a remote AccountService.
type AccountServiceClient interface {
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.UserResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.UserResponse], error)
	UpdateUser(context.Context, *connect.Request[api.UpdateUserRequest]) (*connect.Response[api.UserResponse], error)
	DeleteUser(context.Context, *connect.Request[api.DeleteUserRequest]) (*connect.Response[api.DeleteUserResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	NotifyUser(context.Context, *connect.Request[api.NotifyUserRequest]) (*connect.Response[api.NotifyUserResponse], error)
}

// NewAccountServiceClient creates a client for the AccountService at baseURL.
func NewAccountServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AccountServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &accountServiceClient{
		createUser:        connect.NewClient[api.CreateUserRequest, api.UserResponse](httpClient, baseURL+AccountServiceCreateUserProcedure, opts...),
		getUser:           connect.NewClient[api.GetUserRequest, api.UserResponse](httpClient, baseURL+AccountServiceGetUserProcedure, opts...),
		updateUser:        connect.NewClient[api.UpdateUserRequest, api.UserResponse](httpClient, baseURL+AccountServiceUpdateUserProcedure, opts...),
		deleteUser:        connect.NewClient[api.DeleteUserRequest, api.DeleteUserResponse](httpClient, baseURL+AccountServiceDeleteUserProcedure, opts...),
		createTransaction: connect.NewClient[api.CreateTransactionRequest, api.CreateTransactionResponse](httpClient, baseURL+AccountServiceCreateTransactionProcedure, opts...),
		notifyUser:        connect.NewClient[api.NotifyUserRequest, api.NotifyUserResponse](httpClient, baseURL+AccountServiceNotifyUserProcedure, opts...),
	}
}

type accountServiceClient struct {
	createUser        *connect.Client[api.CreateUserRequest, api.UserResponse]
	getUser           *connect.Client[api.GetUserRequest, api.UserResponse]
	updateUser        *connect.Client[api.UpdateUserRequest, api.UserResponse]
	deleteUser        *connect.Client[api.DeleteUserRequest, api.DeleteUserResponse]
	createTransaction *connect.Client[api.CreateTransactionRequest, api.CreateTransactionResponse]
	notifyUser        *connect.Client[api.NotifyUserRequest, api.NotifyUserResponse]
}

func (c *accountServiceClient) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.UserResponse], error) {
	return c.createUser.CallUnary(ctx, req)
}

func (c *accountServiceClient) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.UserResponse], error) {
	return c.getUser.CallUnary(ctx, req)
}

func (c *accountServiceClient) UpdateUser(ctx context.Context, req *connect.Request[api.UpdateUserRequest]) (*connect.Response[api.UserResponse], error) {
	return c.updateUser.CallUnary(ctx, req)
}

func (c *accountServiceClient) DeleteUser(ctx context.Context, req *connect.Request[api.DeleteUserRequest]) (*connect.Response[api.DeleteUserResponse], error) {
	return c.deleteUser.CallUnary(ctx, req)
}

func (c *accountServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

func (c *accountServiceClient) NotifyUser(ctx context.Context, req *connect.Request[api.NotifyUserRequest]) (*connect.Response[api.NotifyUserResponse], error) {
	return c.notifyUser.CallUnary(ctx, req)
}
