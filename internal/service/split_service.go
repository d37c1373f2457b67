package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"connectrpc.com/connect"

	"github.com/mmynk/qattah/internal/ledger"
	"github.com/mmynk/qattah/internal/metrics"
	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
	"github.com/mmynk/qattah/pkg/api"
	"github.com/mmynk/qattah/pkg/api/apiconnect"
)

// persistedHeader carries the number of entries left behind by a partial split.
const persistedHeader = "Qattah-Persisted-Entries"

var _ apiconnect.SplitServiceHandler = (*SplitService)(nil)

// SplitService implements the Connect SplitService.
type SplitService struct {
	allocator *ledger.Allocator
	payments  *ledger.PaymentLedger
	metrics   *metrics.Metrics
}

// NewSplitService creates a SplitService over the given storage backend.
// m may be nil.
func NewSplitService(store storage.TransactionStore, cfg ledger.Config, m *metrics.Metrics) *SplitService {
	return &SplitService{
		allocator: ledger.NewAllocator(store, cfg),
		payments:  ledger.NewPaymentLedger(store),
		metrics:   m,
	}
}

// CreateSplit writes one entry per participant plus the creator.
func (s *SplitService) CreateSplit(ctx context.Context, req *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error) {
	msg := req.Msg
	entries, err := s.allocator.Allocate(ctx, ledger.SplitRequest{
		Amount:       msg.Amount,
		Category:     msg.Category,
		Date:         msg.Date,
		Title:        msg.Title,
		Participants: msg.Users,
		CreatorID:    msg.CreatorID,
	})
	if err != nil {
		var partial *ledger.PartialSplitError
		if errors.As(err, &partial) {
			s.metrics.SplitPartial(len(partial.Persisted))
			slog.Error("CreateSplit partially persisted",
				"creator", msg.CreatorID,
				"persisted", len(partial.Persisted),
				"failed", len(partial.Failed),
			)
			connectErr := connectError(err)
			connectErr.Meta().Set(persistedHeader, strconv.Itoa(len(partial.Persisted)))
			return nil, connectErr
		}
		slog.Warn("CreateSplit rejected", "creator", msg.CreatorID, "error", err)
		return nil, connectError(err)
	}

	s.metrics.SplitCreated(len(entries), msg.Amount)
	slog.Info("Split created", "creator", msg.CreatorID, "title", msg.Title, "shares", len(entries))

	return connect.NewResponse(&api.CreateSplitResponse{
		Message:   "Qattah transactions created successfully",
		Responses: toAPITransactions(entries),
	}), nil
}

// MarkPaid settles an entry on behalf of its owner.
func (s *SplitService) MarkPaid(ctx context.Context, req *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error) {
	update, err := s.payments.MarkPaid(ctx, req.Msg.TransactionID, req.Msg.UserID)
	if err != nil {
		slog.Warn("MarkPaid failed",
			"transaction_id", req.Msg.TransactionID,
			"user_id", req.Msg.UserID,
			"error", err,
		)
		return nil, connectError(err)
	}

	s.metrics.ShareSettled()
	return connect.NewResponse(&api.MarkPaidResponse{
		Message:  "Transaction marked as paid",
		Response: &api.PaidAttributes{IsPaid: update.IsPaid},
	}), nil
}

// GetSplitGroup reconstructs a split group from its entries.
func (s *SplitService) GetSplitGroup(ctx context.Context, req *connect.Request[api.GetSplitGroupRequest]) (*connect.Response[api.GetSplitGroupResponse], error) {
	key := models.GroupKey{CameFrom: req.Msg.CameFrom, Title: req.Msg.Title, Date: req.Msg.Date}
	status, err := s.allocator.Group(ctx, key, req.Msg.Users)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(toAPIGroup(status)), nil
}

// DeleteSplitGroup removes every entry of a split group. It is the
// compensating action for a partially persisted split.
func (s *SplitService) DeleteSplitGroup(ctx context.Context, req *connect.Request[api.DeleteSplitGroupRequest]) (*connect.Response[api.DeleteSplitGroupResponse], error) {
	key := models.GroupKey{CameFrom: req.Msg.CameFrom, Title: req.Msg.Title, Date: req.Msg.Date}
	deleted, err := s.allocator.Compensate(ctx, key)
	if err != nil {
		slog.Error("DeleteSplitGroup failed", "creator", key.CameFrom, "title", key.Title, "deleted", deleted, "error", err)
		return nil, connectError(err)
	}

	s.metrics.GroupRemoved()
	return connect.NewResponse(&api.DeleteSplitGroupResponse{
		Message: fmt.Sprintf("Split group %q deleted", key.Title),
		Deleted: deleted,
	}), nil
}
