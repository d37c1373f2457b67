package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/calculator"
	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
)

// SplitRequest describes one shared expense.
type SplitRequest struct {
	Amount       decimal.Decimal
	Category     string
	Date         string
	Title        string
	Participants []string
	CreatorID    string
}

// Key returns the group key the request's entries will share.
func (r SplitRequest) Key() models.GroupKey {
	return models.GroupKey{CameFrom: r.CreatorID, Title: r.Title, Date: r.Date}
}

// ShareFailure records a share that could not be written.
type ShareFailure struct {
	UserID string
	Amount decimal.Decimal
	Err    error
}

// PartialSplitError is returned by Allocate when some writes failed.
// The persisted entries are left in place; Compensate removes them.
type PartialSplitError struct {
	Key       models.GroupKey
	Persisted []*models.Transaction
	Failed    []ShareFailure
}

func (e *PartialSplitError) Error() string {
	users := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		users[i] = f.UserID
	}
	return fmt.Sprintf("split %q by %s: %d of %d shares failed to persist (%s)",
		e.Key.Title, e.Key.CameFrom, len(e.Failed), len(e.Failed)+len(e.Persisted), strings.Join(users, ", "))
}

// Unwrap exposes models.ErrDependency and every underlying write error.
func (e *PartialSplitError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed)+1)
	errs = append(errs, models.ErrDependency)
	for _, f := range e.Failed {
		errs = append(errs, f.Err)
	}
	return errs
}

// Allocator creates and reconciles split groups.
type Allocator struct {
	store storage.TransactionStore
	cfg   Config
}

// NewAllocator creates an Allocator writing to store.
func NewAllocator(store storage.TransactionStore, cfg Config) *Allocator {
	return &Allocator{store: store, cfg: cfg.withDefaults()}
}

func (a *Allocator) validate(req SplitRequest) error {
	var missing []string
	if req.Category == "" {
		missing = append(missing, "category")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.CreatorID == "" {
		missing = append(missing, "creatorID")
	}
	if len(req.Participants) == 0 {
		missing = append(missing, "users")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", models.ErrMissingField, strings.Join(missing, ", "))
	}

	if !strings.EqualFold(req.Category, a.cfg.SplitCategory) {
		return fmt.Errorf("%w: %q, expected %q", models.ErrInvalidCategory, req.Category, a.cfg.SplitCategory)
	}
	return nil
}

// Allocate splits req.Amount between the creator and the participants and
// writes one entry per person, creator first.
//
// Every write is attempted even after a failure. If any write fails the
// result is a *PartialSplitError listing what was persisted.
func (a *Allocator) Allocate(ctx context.Context, req SplitRequest) ([]*models.Transaction, error) {
	if err := a.validate(req); err != nil {
		return nil, err
	}

	shares, err := calculator.CalculateShares(req.Amount, req.CreatorID, req.Participants)
	if err != nil {
		return nil, err
	}

	partial := &PartialSplitError{Key: req.Key()}
	for _, share := range shares {
		tx := &models.Transaction{
			Amount:   share.Amount,
			Category: req.Category,
			Date:     req.Date,
			Title:    req.Title,
			UserID:   share.UserID,
			IsPaid:   models.BoolPtr(share.Creator),
			CameFrom: req.CreatorID,
		}
		if err := a.store.PutTransaction(ctx, tx); err != nil {
			slog.Error("Failed to persist split share",
				"creator", req.CreatorID,
				"user_id", share.UserID,
				"amount", share.Amount.String(),
				"error", err,
			)
			partial.Failed = append(partial.Failed, ShareFailure{UserID: share.UserID, Amount: share.Amount, Err: err})
			continue
		}
		partial.Persisted = append(partial.Persisted, tx)
	}

	if len(partial.Failed) > 0 {
		return partial.Persisted, partial
	}

	slog.Debug("Split allocated",
		"creator", req.CreatorID,
		"title", req.Title,
		"shares", len(shares),
		"amount", req.Amount.String(),
	)
	return partial.Persisted, nil
}

// Entries returns every persisted entry of the group identified by key.
func (a *Allocator) Entries(ctx context.Context, key models.GroupKey) ([]*models.Transaction, error) {
	if key.CameFrom == "" || key.Title == "" || key.Date == "" {
		return nil, fmt.Errorf("%w: cameFrom, title and date identify a group", models.ErrMissingField)
	}

	filter := storage.TransactionFilter{CameFrom: key.CameFrom, Title: key.Title, Date: key.Date}
	entries, err := storage.CollectAll(ctx, a.store, filter, a.cfg.PageSize)
	if err != nil {
		return nil, dependency("failed to read split group", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("split group %q by %s: %w", key.Title, key.CameFrom, models.ErrNotFound)
	}
	return entries, nil
}

// Group reconstructs a split group and reports its settlement state.
// expected lists the participants the caller believes are in the group;
// missing ones are reported in the status.
func (a *Allocator) Group(ctx context.Context, key models.GroupKey, expected []string) (*calculator.GroupStatus, error) {
	entries, err := a.Entries(ctx, key)
	if err != nil {
		return nil, err
	}
	return calculator.CalculateGroupStatus(key.CameFrom, entries, expected), nil
}

// Compensate deletes every entry of a split group and returns how many were
// removed. Entries already gone are skipped; other delete failures are
// collected and returned together after every entry was attempted.
func (a *Allocator) Compensate(ctx context.Context, key models.GroupKey) (int, error) {
	entries, err := a.Entries(ctx, key)
	if err != nil {
		return 0, err
	}

	deleted := 0
	var errs []error
	for _, tx := range entries {
		err := a.store.DeleteTransaction(ctx, tx.ID)
		switch {
		case err == nil:
			deleted++
		case errors.Is(err, models.ErrNotFound):
			// already removed
		default:
			errs = append(errs, fmt.Errorf("transaction %s: %w", tx.ID, err))
		}
	}

	if len(errs) > 0 {
		return deleted, dependency("failed to delete split group", errors.Join(errs...))
	}

	slog.Info("Split group removed", "creator", key.CameFrom, "title", key.Title, "date", key.Date, "deleted", deleted)
	return deleted, nil
}
