package models

import "github.com/shopspring/decimal"

// Transaction represents one ledger entry.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	// Generated by the store on creation and never changed afterwards.
	ID string `json:"id"`

	// Amount is the entry value. Always non-negative.
	Amount decimal.Decimal `json:"amount"`

	// Category is a free-text label (e.g., "Groceries", "Qattah").
	Category string `json:"category"`

	// Date is supplied by the caller and treated as an opaque string.
	// Date range filters compare it lexicographically, so ISO dates
	// (YYYY-MM-DD) sort chronologically.
	Date string `json:"date"`

	// Title is a free-text description.
	Title string `json:"title"`

	// UserID is the owner of this specific entry: the person who paid or
	// owes this share.
	UserID string `json:"userID"`

	// IsPaid is set only on entries created by a split.
	// nil means the entry is an ordinary single-owner transaction.
	IsPaid *bool `json:"isPaid,omitempty"`

	// CameFrom is the user who originated the split group this entry
	// belongs to. Empty for ordinary transactions.
	CameFrom string `json:"cameFrom,omitempty"`
}

// Settled reports whether the entry has been marked as paid.
func (t *Transaction) Settled() bool {
	return t.IsPaid != nil && *t.IsPaid
}

// InGroup reports whether the entry belongs to the split group identified by key.
func (t *Transaction) InGroup(key GroupKey) bool {
	return t.CameFrom == key.CameFrom && t.Title == key.Title && t.Date == key.Date
}

// GroupKey identifies a split group. All entries of one split share it.
type GroupKey struct {
	CameFrom string
	Title    string
	Date     string
}

// PaidUpdate holds the attributes changed by marking a transaction as paid.
type PaidUpdate struct {
	IsPaid bool `json:"isPaid"`
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
