package ports

import "context"

// KeyValueStorage — долговременное key-value хранилище посетителя (аналог localStorage).
type KeyValueStorage interface {
	// GetItem — (value, true, nil) при наличии ключа, (nil, false, nil) при отсутствии.
	GetItem(ctx context.Context, key string) ([]byte, bool, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}

// VisitorStorage — выдаёт изолированное хранилище конкретного посетителя.
type VisitorStorage interface {
	ForVisitor(visitorID string) KeyValueStorage
}
