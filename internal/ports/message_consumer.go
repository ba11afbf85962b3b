package ports

import "context"

// MessageConsumer — фоновый читатель событий списка подарков.
// Run блокируется до отмены ctx; Close безопасно вызывать повторно.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
