// Package idempotency remembers the response given to a request carrying an
// Idempotency-Key so a retried request is answered without running twice.
package idempotency

import (
	"context"
	"sync"
	"time"
)

// Response is the recorded outcome of a request.
type Response struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Store keeps one slot per key. A slot is either reserved (request in
// flight) or completed (response saved). Both expire after the store's TTL.
type Store interface {
	// Reserve claims key. It reports false when the key is already reserved
	// or completed.
	Reserve(ctx context.Context, key string) (bool, error)
	// Get returns the saved response for key, if any.
	Get(ctx context.Context, key string) (*Response, bool, error)
	Save(ctx context.Context, key string, resp Response) error
	// Release drops a reservation so the request can be retried.
	Release(ctx context.Context, key string) error
}

type memorySlot struct {
	resp    *Response
	expires time.Time
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	slots map[string]memorySlot
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		now:   time.Now,
		slots: make(map[string]memorySlot),
	}
}

// lookup returns the live slot for key, dropping it if expired. Callers hold mu.
func (s *MemoryStore) lookup(key string) (memorySlot, bool) {
	slot, ok := s.slots[key]
	if !ok {
		return memorySlot{}, false
	}
	if !s.now().Before(slot.expires) {
		delete(s.slots, key)
		return memorySlot{}, false
	}
	return slot, true
}

func (s *MemoryStore) Reserve(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lookup(key); ok {
		return false, nil
	}
	s.slots[key] = memorySlot{expires: s.now().Add(s.ttl)}
	return true, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Response, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.lookup(key)
	if !ok || slot.resp == nil {
		return nil, false, nil
	}
	resp := *slot.resp
	return &resp, true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, resp Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = memorySlot{resp: &resp, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slot, ok := s.slots[key]; ok && slot.resp == nil {
		delete(s.slots, key)
	}
	return nil
}
