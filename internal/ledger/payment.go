package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
)

// PaymentLedger settles split entries.
type PaymentLedger struct {
	store storage.TransactionStore
}

// NewPaymentLedger creates a PaymentLedger backed by store.
func NewPaymentLedger(store storage.TransactionStore) *PaymentLedger {
	return &PaymentLedger{store: store}
}

// MarkPaid marks transactionID as paid if it belongs to userID.
// Marking an already paid entry again succeeds.
func (l *PaymentLedger) MarkPaid(ctx context.Context, transactionID, userID string) (*models.PaidUpdate, error) {
	if transactionID == "" || userID == "" {
		return nil, fmt.Errorf("%w: transactionID and userID are required", models.ErrMissingField)
	}

	if err := l.store.MarkPaid(ctx, transactionID, userID); err != nil {
		return nil, dependency("failed to mark paid", err)
	}

	slog.Debug("Transaction marked paid", "transaction_id", transactionID, "user_id", userID)
	return &models.PaidUpdate{IsPaid: true}, nil
}
