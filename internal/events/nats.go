package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// NewNATS constructs a thin NATS-based publisher.
func NewNATS(nc *nats.Conn) Publisher {
	return &natsPublisher{nc: nc}
}

type natsPublisher struct {
	nc *nats.Conn
}

func (p *natsPublisher) Publish(_ context.Context, ev ChatRecorded) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.RecordedAt.IsZero() {
		ev.RecordedAt = time.Now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.nc.Publish(SubjectChatRecorded, body)
}

func (p *natsPublisher) Close() error {
	p.nc.Close()
	return nil
}
