// Package api defines the JSON request and response messages of the Qattah
// services. Amounts are decimal strings on the wire; requests may also send
// them as JSON numbers.
package api

import "github.com/shopspring/decimal"

// Transaction is a ledger entry as returned to clients.
type Transaction struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Title    string          `json:"title"`
	UserID   string          `json:"userID"`
	IsPaid   *bool           `json:"isPaid,omitempty"`
	CameFrom string          `json:"cameFrom,omitempty"`
}

// User is a registered person.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
