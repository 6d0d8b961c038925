package service

import (
	"context"
	"time"
)

const (
	EventTypeUpdated  = "portfolio.updated"
	EventTypeReplaced = "portfolio.replaced"
)

// ChangeEvent is emitted after every committed store mutation.
type ChangeEvent struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Op              string    `json:"op"`
	ProfileID       string    `json:"profileId,omitempty"`
	ActiveProfileID string    `json:"activeProfileId"`
	At              time.Time `json:"at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, evt ChangeEvent) error
	Close() error
}
