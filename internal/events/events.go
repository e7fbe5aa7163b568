// Package events announces newly recorded chats to interested
// consumers (analytics, archival). Publishing is best-effort: a failed
// publish is logged by the caller and never affects the reply.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chat-relay/internal/retry"
)

// SubjectChatRecorded is the subject new-record events are published on.
const SubjectChatRecorded = "chat.recorded"

// ChatRecorded describes one freshly answered question.
type ChatRecorded struct {
	ID         uuid.UUID `json:"id"`
	Session    string    `json:"session"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Provider   string    `json:"provider"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Publisher exposes a minimal contract to emit chat events.
type Publisher interface {
	Publish(ctx context.Context, ev ChatRecorded) error
	Close() error
}

// PublishWithRetry attempts to publish with retries and exponential backoff.
func PublishWithRetry(ctx context.Context, p Publisher, ev ChatRecorded, attempts int, base time.Duration) error {
	if attempts <= 0 {
		attempts = 1
	}
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = p.Publish(ctx, ev); err == nil {
			return nil
		}
		if attempt == attempts-1 {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry.ExponentialBackoff(attempt, base)):
		}
	}
	return err
}
