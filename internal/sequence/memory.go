package sequence

import (
	"context"
	"sync"

	"github.com/jaessolutions/docdesk/internal/entity"
)

// MemoryStore keeps counters in process memory. Values vanish on restart,
// which the floor fallback absorbs.
type MemoryStore struct {
	mu     sync.Mutex
	values map[entity.DocClass]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[entity.DocClass]string),
	}
}

func (s *MemoryStore) LastValue(_ context.Context, class entity.DocClass) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.values[class], nil
}

func (s *MemoryStore) SetLastValue(_ context.Context, class entity.DocClass, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[class] = value

	return nil
}
