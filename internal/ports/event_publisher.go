package ports

import (
	"context"

	"github.com/Gunvolt24/giftlist/internal/domain"
)

// EventPublisher — публикация событий списка подарков.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.RegistryEvent) error
	Close() error
}
