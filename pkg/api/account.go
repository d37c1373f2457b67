package api

import "github.com/shopspring/decimal"

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UserResponse is returned by every user operation that yields a record.
type UserResponse struct {
	Message  string `json:"message"`
	UserData *User  `json:"userData"`
}

type GetUserRequest struct {
	ID string `json:"id"`
}

// UpdateUserRequest changes only the fields that are present.
type UpdateUserRequest struct {
	ID    string  `json:"id"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type DeleteUserRequest struct {
	ID string `json:"id"`
}

type DeleteUserResponse struct {
	UserMessage         string `json:"userMessage"`
	TransactionMessage  string `json:"transactionMessage"`
	TransactionsDeleted int    `json:"transactionsDeleted"`
}

type CreateTransactionRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Title    string          `json:"title"`
	UserID   string          `json:"userID"`
}

type CreateTransactionResponse struct {
	Message     string       `json:"message"`
	Transaction *Transaction `json:"transaction"`
}

type NotifyUserRequest struct {
	UserID        string `json:"userID"`
	TransactionID string `json:"transactionID"`
}

type NotifyUserResponse struct {
	Message string `json:"message"`
}
