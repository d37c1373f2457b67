package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
)

// Runs only against a disposable database named by QATTAH_TEST_DATABASE_URL.
func TestPostgresStore(t *testing.T) {
	url := os.Getenv("QATTAH_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("QATTAH_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := New(ctx, url)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer store.Close()

	owner := "pg-owner-" + t.Name()
	tx := &models.Transaction{
		Amount:   decimal.RequireFromString("33.33"),
		Category: "Qattah",
		Date:     "2024-06-01",
		Title:    "Groceries run",
		UserID:   owner,
		IsPaid:   models.BoolPtr(false),
		CameFrom: "pg-creator",
	}
	if err := store.PutTransaction(ctx, tx); err != nil {
		t.Fatalf("PutTransaction failed: %v", err)
	}
	defer store.DeleteTransaction(ctx, tx.ID)

	got, err := store.GetTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetTransaction failed: %v", err)
	}
	if !got.Amount.Equal(tx.Amount) {
		t.Errorf("Amount mismatch: got %s, want %s", got.Amount, tx.Amount)
	}

	if err := store.MarkPaid(ctx, tx.ID, "someone-else"); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized, got %v", err)
	}
	if err := store.MarkPaid(ctx, tx.ID, owner); err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}
	if err := store.MarkPaid(ctx, "missing-id", owner); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	all, err := storage.CollectAll(ctx, store, storage.TransactionFilter{UserID: owner}, 1)
	if err != nil {
		t.Fatalf("CollectAll failed: %v", err)
	}
	if len(all) != 1 || !all[0].Settled() {
		t.Errorf("Expected one settled transaction, got %+v", all)
	}
}
