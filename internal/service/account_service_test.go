package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
	"github.com/mmynk/qattah/pkg/api"
)

func createUser(t *testing.T, c *testClients, name, email string) *api.User {
	t.Helper()
	resp, err := c.account.CreateUser(context.Background(), connect.NewRequest(&api.CreateUserRequest{
		Name: name, Email: email, Phone: "555-0100",
	}))
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return resp.Msg.UserData
}

func TestAccountService_UserLifecycle(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	user := createUser(t, c, "Alice", "alice@example.com")
	if user.ID == "" {
		t.Fatal("expected generated user ID")
	}

	got, err := c.account.GetUser(ctx, connect.NewRequest(&api.GetUserRequest{ID: user.ID}))
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Msg.UserData.Email != "alice@example.com" {
		t.Errorf("email = %q", got.Msg.UserData.Email)
	}

	newEmail := "alice@work.example.com"
	updated, err := c.account.UpdateUser(ctx, connect.NewRequest(&api.UpdateUserRequest{ID: user.ID, Email: &newEmail}))
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.Msg.UserData.Email != newEmail || updated.Msg.UserData.Name != "Alice" {
		t.Errorf("unexpected update result %+v", updated.Msg.UserData)
	}

	_, err = c.account.UpdateUser(ctx, connect.NewRequest(&api.UpdateUserRequest{ID: user.ID}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = c.account.GetUser(ctx, connect.NewRequest(&api.GetUserRequest{ID: "missing"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.account.CreateUser(ctx, connect.NewRequest(&api.CreateUserRequest{Email: "x@example.com"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestAccountService_DeleteUserCascades(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	user := createUser(t, c, "Alice", "alice@example.com")

	// five entries span three pages at the test page size of two
	for i := 0; i < 5; i++ {
		_, err := c.account.CreateTransaction(ctx, connect.NewRequest(&api.CreateTransactionRequest{
			Amount: decimal.NewFromInt(10), Category: "Food", Date: "2024-04-01", Title: "Lunch", UserID: user.ID,
		}))
		if err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}
	seedSpending(t, c, "bob", map[string]int64{"Food": 5})

	resp, err := c.account.DeleteUser(ctx, connect.NewRequest(&api.DeleteUserRequest{ID: user.ID}))
	if err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if resp.Msg.TransactionsDeleted != 5 {
		t.Errorf("deleted %d transactions, want 5", resp.Msg.TransactionsDeleted)
	}
	if resp.Msg.TransactionMessage != "Associated transactions deleted successfully." {
		t.Errorf("unexpected message %q", resp.Msg.TransactionMessage)
	}

	left, err := storage.CollectAll(ctx, c.store, storage.TransactionFilter{UserID: user.ID}, 10)
	if err != nil {
		t.Fatalf("CollectAll failed: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("%d transactions survived the delete", len(left))
	}
	bobs, _ := storage.CollectAll(ctx, c.store, storage.TransactionFilter{UserID: "bob"}, 10)
	if len(bobs) != 1 {
		t.Errorf("other users' transactions should survive, got %d", len(bobs))
	}

	_, err = c.account.DeleteUser(ctx, connect.NewRequest(&api.DeleteUserRequest{ID: user.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestAccountService_CreateTransaction(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := c.account.CreateTransaction(ctx, connect.NewRequest(&api.CreateTransactionRequest{
		Amount: decimal.RequireFromString("12.34"), Category: "Groceries", Date: "2024-04-02", Title: "Market", UserID: "alice",
	}))
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	tx := resp.Msg.Transaction
	if tx.IsPaid != nil || tx.CameFrom != "" {
		t.Errorf("ordinary transaction should not carry split fields: %+v", tx)
	}

	stored, err := c.store.GetTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetTransaction failed: %v", err)
	}
	if !stored.Amount.Equal(decimal.RequireFromString("12.34")) {
		t.Errorf("stored amount = %s", stored.Amount)
	}

	_, err = c.account.CreateTransaction(ctx, connect.NewRequest(&api.CreateTransactionRequest{Amount: decimal.NewFromInt(1), UserID: "alice"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestAccountService_NotifyUser(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	user := createUser(t, c, "Alice", "alice@example.com")

	resp, err := c.account.NotifyUser(ctx, connect.NewRequest(&api.NotifyUserRequest{UserID: user.ID, TransactionID: "tx-9"}))
	if err != nil {
		t.Fatalf("NotifyUser failed: %v", err)
	}
	if resp.Msg.Message != "Email sent successfully." {
		t.Errorf("unexpected message %q", resp.Msg.Message)
	}
	sent := c.outbox.messages()
	if len(sent) != 1 || sent[0].Body != "Your transaction with ID tx-9 has been processed." {
		t.Errorf("unexpected outbox %+v", sent)
	}

	_, err = c.account.NotifyUser(ctx, connect.NewRequest(&api.NotifyUserRequest{UserID: "missing", TransactionID: "tx-9"}))
	assertCode(t, err, connect.CodeNotFound)

	if err := c.store.PutUser(ctx, &models.User{ID: "quiet", Name: "Quiet"}); err != nil {
		t.Fatalf("PutUser failed: %v", err)
	}
	_, err = c.account.NotifyUser(ctx, connect.NewRequest(&api.NotifyUserRequest{UserID: "quiet", TransactionID: "tx-9"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}
