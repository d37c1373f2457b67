package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/qattah/internal/metrics"
	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/notify"
	"github.com/mmynk/qattah/internal/storage"
	"github.com/mmynk/qattah/pkg/api"
	"github.com/mmynk/qattah/pkg/api/apiconnect"
)

var _ apiconnect.AccountServiceHandler = (*AccountService)(nil)

// AccountService implements user management, plain transactions and
// notifications.
type AccountService struct {
	store    storage.Store
	notifier *notify.Notifier
	pageSize int
	metrics  *metrics.Metrics
}

// NewAccountService creates an AccountService. pageSize bounds the scans
// used to cascade user deletion.
func NewAccountService(store storage.Store, notifier *notify.Notifier, pageSize int, m *metrics.Metrics) *AccountService {
	return &AccountService{store: store, notifier: notifier, pageSize: pageSize, metrics: m}
}

// CreateUser registers a user with a generated ID.
func (s *AccountService) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.UserResponse], error) {
	if req.Msg.Name == "" {
		return nil, connectError(fmt.Errorf("%w: name", models.ErrMissingField))
	}

	user := &models.User{Name: req.Msg.Name, Email: req.Msg.Email, Phone: req.Msg.Phone}
	if err := s.store.PutUser(ctx, user); err != nil {
		slog.Error("CreateUser failed", "error", err)
		return nil, connectError(fmt.Errorf("%w: %w", models.ErrDependency, err))
	}

	slog.Info("User created", "user_id", user.ID)
	return connect.NewResponse(&api.UserResponse{
		Message:  "User created successfully.",
		UserData: toAPIUser(user),
	}), nil
}

// GetUser returns a user record.
func (s *AccountService) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.UserResponse], error) {
	if req.Msg.ID == "" {
		return nil, connectError(fmt.Errorf("%w: id", models.ErrMissingField))
	}

	user, err := s.store.GetUser(ctx, req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.UserResponse{
		Message:  fmt.Sprintf("User data retrieved successfully for ID: %s.", user.ID),
		UserData: toAPIUser(user),
	}), nil
}

// UpdateUser changes the fields present in the request.
func (s *AccountService) UpdateUser(ctx context.Context, req *connect.Request[api.UpdateUserRequest]) (*connect.Response[api.UserResponse], error) {
	if req.Msg.ID == "" {
		return nil, connectError(fmt.Errorf("%w: id", models.ErrMissingField))
	}

	patch := models.UserPatch{Name: req.Msg.Name, Email: req.Msg.Email, Phone: req.Msg.Phone}
	if patch.Empty() {
		return nil, connectError(fmt.Errorf("%w: nothing to update", models.ErrMissingField))
	}

	user, err := s.store.UpdateUser(ctx, req.Msg.ID, patch)
	if err != nil {
		slog.Warn("UpdateUser failed", "user_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.UserResponse{
		Message:  "User updated successfully.",
		UserData: toAPIUser(user),
	}), nil
}

// DeleteUser removes a user and every transaction they own.
func (s *AccountService) DeleteUser(ctx context.Context, req *connect.Request[api.DeleteUserRequest]) (*connect.Response[api.DeleteUserResponse], error) {
	userID := req.Msg.ID
	if userID == "" {
		return nil, connectError(fmt.Errorf("%w: id", models.ErrMissingField))
	}

	if err := s.store.DeleteUser(ctx, userID); err != nil {
		return nil, connectError(err)
	}

	// Collect first so deletes never shift the scan's cursor
	owned, err := storage.CollectAll(ctx, s.store, storage.TransactionFilter{UserID: userID}, s.pageSize)
	if err != nil {
		slog.Error("DeleteUser could not list transactions", "user_id", userID, "error", err)
		return nil, connectError(fmt.Errorf("%w: %w", models.ErrDependency, err))
	}

	deleted := 0
	for _, tx := range owned {
		if err := s.store.DeleteTransaction(ctx, tx.ID); err != nil {
			slog.Error("DeleteUser could not delete transaction", "user_id", userID, "transaction_id", tx.ID, "error", err)
			return nil, connectError(fmt.Errorf("%w: %w", models.ErrDependency, err))
		}
		deleted++
	}

	txMessage := "No associated transactions to delete."
	if deleted > 0 {
		txMessage = "Associated transactions deleted successfully."
	}
	slog.Info("User deleted", "user_id", userID, "transactions_deleted", deleted)

	return connect.NewResponse(&api.DeleteUserResponse{
		UserMessage:         fmt.Sprintf("User with ID: %s deleted successfully.", userID),
		TransactionMessage:  txMessage,
		TransactionsDeleted: deleted,
	}), nil
}

// CreateTransaction records an ordinary single-owner entry.
func (s *AccountService) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	msg := req.Msg
	if msg.Category == "" || msg.Date == "" || msg.Title == "" || msg.UserID == "" {
		return nil, connectError(fmt.Errorf("%w: category, date, title and userID are required", models.ErrMissingField))
	}
	if msg.Amount.IsNegative() {
		return nil, connectError(models.ErrInvalidAmount)
	}

	tx := &models.Transaction{
		Amount:   msg.Amount,
		Category: msg.Category,
		Date:     msg.Date,
		Title:    msg.Title,
		UserID:   msg.UserID,
	}
	if err := s.store.PutTransaction(ctx, tx); err != nil {
		slog.Error("CreateTransaction failed", "user_id", msg.UserID, "error", err)
		return nil, connectError(fmt.Errorf("%w: %w", models.ErrDependency, err))
	}

	return connect.NewResponse(&api.CreateTransactionResponse{
		Message:     "Transaction created successfully.",
		Transaction: toAPITransaction(tx),
	}), nil
}

// NotifyUser tells a user their transaction has been processed.
func (s *AccountService) NotifyUser(ctx context.Context, req *connect.Request[api.NotifyUserRequest]) (*connect.Response[api.NotifyUserResponse], error) {
	err := s.notifier.NotifyTransaction(ctx, req.Msg.UserID, req.Msg.TransactionID)
	s.metrics.Notification(err)
	if err != nil {
		slog.Warn("NotifyUser failed", "user_id", req.Msg.UserID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.NotifyUserResponse{Message: "Email sent successfully."}), nil
}
