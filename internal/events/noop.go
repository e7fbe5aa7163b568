package events

import "context"

// NoOpPublisher drops all events. Used when no broker is configured.
type NoOpPublisher struct{}

func NewNoOpPublisher() *NoOpPublisher { return &NoOpPublisher{} }

func (NoOpPublisher) Publish(context.Context, ChatRecorded) error { return nil }

func (NoOpPublisher) Close() error { return nil }
