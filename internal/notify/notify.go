// Package notify sends messages to users.
//
// The Notifier resolves a user's e-mail address and hands an EmailMessage to a
// Publisher. Delivery itself happens downstream of the publisher (a mail
// worker consuming the queue or subject).
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
)

// DefaultSender is the From address used when none is configured.
const DefaultSender = "no-reply@qattah.app"

// Message is the content of a notification.
type Message struct {
	Subject string
	Body    string
}

// EmailMessage is the payload handed to a Publisher.
type EmailMessage struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ToJSON encodes the message for the wire.
func (m EmailMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// Publisher enqueues an e-mail for delivery.
type Publisher interface {
	Publish(ctx context.Context, msg EmailMessage) error
	Close() error
}

// Notifier addresses messages to users by ID.
type Notifier struct {
	users     storage.UserStore
	publisher Publisher
	sender    string
}

// NewNotifier creates a Notifier that looks users up in users and sends
// through publisher.
func NewNotifier(users storage.UserStore, publisher Publisher, sender string) *Notifier {
	if sender == "" {
		sender = DefaultSender
	}
	return &Notifier{users: users, publisher: publisher, sender: sender}
}

// Notify resolves userID's e-mail address and publishes msg to it.
func (n *Notifier) Notify(ctx context.Context, userID string, msg Message) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", models.ErrMissingField)
	}

	user, err := n.users.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve recipient: %w", err)
	}
	if user.Email == "" {
		return fmt.Errorf("user %s has no email: %w", userID, models.ErrMissingField)
	}

	email := EmailMessage{
		To:      user.Email,
		From:    n.sender,
		Subject: msg.Subject,
		Body:    msg.Body,
	}
	if err := n.publisher.Publish(ctx, email); err != nil {
		slog.Error("Failed to publish notification", "user_id", userID, "error", err)
		return fmt.Errorf("failed to publish notification: %w: %w", models.ErrDependency, err)
	}

	slog.Info("Notification queued", "user_id", userID, "subject", msg.Subject)
	return nil
}

// NotifyTransaction tells userID that a transaction has been processed.
func (n *Notifier) NotifyTransaction(ctx context.Context, userID, transactionID string) error {
	if transactionID == "" {
		return fmt.Errorf("%w: transactionID", models.ErrMissingField)
	}
	return n.Notify(ctx, userID, TransactionProcessed(transactionID))
}

// TransactionProcessed is the message sent once a transaction is handled.
func TransactionProcessed(transactionID string) Message {
	return Message{
		Subject: "Payment",
		Body:    fmt.Sprintf("Your transaction with ID %s has been processed.", transactionID),
	}
}
