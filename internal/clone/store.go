package clone

import "sync"

// Store passes fragments between a digest call and a later ligation. The
// core functions never touch one; whatever layer orchestrates a
// digest-then-ligate workflow owns it and injects it, and is responsible
// for any concurrency control beyond what the implementation provides.
type Store interface {
	Put(id string, frag Fragment)
	Get(id string) (Fragment, bool)
}

// MemStore is an in-memory Store safe for concurrent use.
type MemStore struct {
	mu    sync.RWMutex
	frags map[string]Fragment
}

// NewMemStore returns an empty in-memory fragment store.
func NewMemStore() *MemStore {
	return &MemStore{
		frags: map[string]Fragment{},
	}
}

// Put stores a fragment under an id, replacing any previous fragment there.
func (s *MemStore) Put(id string, frag Fragment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frags[id] = frag
}

// Get looks up a fragment by id.
func (s *MemStore) Get(id string) (Fragment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	frag, ok := s.frags[id]
	return frag, ok
}
