package notify

import (
	"context"
	"log/slog"
)

// LogPublisher writes e-mails to the structured log instead of a broker.
// Used for local runs.
type LogPublisher struct{}

var _ Publisher = LogPublisher{}

func (LogPublisher) Publish(ctx context.Context, msg EmailMessage) error {
	slog.InfoContext(ctx, "Email message",
		"to", msg.To,
		"from", msg.From,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

func (LogPublisher) Close() error { return nil }
