// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/qattah/internal/models"
)

// DefaultPageSize is used when a PageRequest does not set a limit.
const DefaultPageSize = 100

// TransactionFilter selects transactions in a scan. Zero fields match everything.
type TransactionFilter struct {
	UserID   string
	CameFrom string
	Title    string
	Date     string

	// DateFrom and DateTo bound Date inclusively, compared as strings.
	DateFrom string
	DateTo   string
}

// PageRequest asks for one page of a scan.
type PageRequest struct {
	// Limit caps the number of items returned. Zero means DefaultPageSize.
	Limit int

	// Token continues a previous scan. Empty starts from the beginning.
	Token string
}

// Page is one page of scan results.
type Page struct {
	Items []*models.Transaction

	// NextToken is empty once the scan is exhausted.
	NextToken string
}

// TransactionStore defines the ledger entry operations.
type TransactionStore interface {
	// PutTransaction persists a new transaction.
	// The tx.ID field will be populated by the store when empty.
	PutTransaction(ctx context.Context, tx *models.Transaction) error

	// GetTransaction retrieves a transaction by its ID.
	// Returns an error wrapping models.ErrNotFound if it does not exist.
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// MarkPaid sets is_paid to true only if the stored record belongs to userID.
	// Returns models.ErrNotFound when no record has the ID and
	// models.ErrUnauthorized when the owner differs; the record is left
	// unchanged in both cases.
	MarkPaid(ctx context.Context, id, userID string) error

	// ScanTransactions returns one page of transactions matching filter,
	// ordered by ID.
	ScanTransactions(ctx context.Context, filter TransactionFilter, page PageRequest) (*Page, error)

	// DeleteTransaction removes a transaction by ID.
	DeleteTransaction(ctx context.Context, id string) error
}

// UserStore defines the user record operations.
type UserStore interface {
	// PutUser persists a new user. The user.ID field will be populated when empty.
	PutUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID.
	// Returns an error wrapping models.ErrNotFound if it does not exist.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// UpdateUser applies patch and returns the updated record.
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)

	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}

// Store defines the interface for the Users and Transactions collections.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the ledger or service layers.
type Store interface {
	TransactionStore
	UserStore

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
