package tracker

import (
	"context"
	"slices"
	"sync"

	"github.com/Gunvolt24/giftlist/internal/ports"
)

var (
	_ ports.KeyValueStorage = (*MemoryStorage)(nil)
	_ ports.VisitorStorage  = (*MemoryVisitorStorage)(nil)
)

// MemoryStorage — key-value хранилище в памяти процесса.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string][]byte)}
}

func (s *MemoryStorage) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return slices.Clone(v), ok, nil
}

func (s *MemoryStorage) SetItem(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = slices.Clone(value)
	return nil
}

func (s *MemoryStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// MemoryVisitorStorage — набор MemoryStorage по посетителям.
type MemoryVisitorStorage struct {
	mu       sync.Mutex
	visitors map[string]*MemoryStorage
}

func NewMemoryVisitorStorage() *MemoryVisitorStorage {
	return &MemoryVisitorStorage{visitors: make(map[string]*MemoryStorage)}
}

func (s *MemoryVisitorStorage) ForVisitor(visitorID string) ports.KeyValueStorage {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.visitors[visitorID]
	if !ok {
		st = NewMemoryStorage()
		s.visitors[visitorID] = st
	}
	return st
}
