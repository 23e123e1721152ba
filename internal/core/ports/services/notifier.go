package services

import "context"

// EventPublisher dispatches outbound notifications. Publishing is strictly
// best-effort and happens only after the unit of work has committed; a
// publish failure is logged, never propagated.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
}
