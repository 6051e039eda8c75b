package extension

import "sync"

// Namespace scopes store keys so independent extensions cannot collide.
type Namespace string

type storeKey struct {
	ns  Namespace
	key string
}

// Store is a namespaced key-value store shared between resolvers through
// the execution context. Reads fall back to the parent context's store;
// writes always go to the local level.
//
// Store is thread-safe.
type Store struct {
	parent *Store
	m      map[storeKey]any
	mu     sync.Mutex
}

func newStore(parent *Store) *Store {
	return &Store{parent: parent, m: make(map[storeKey]any)}
}

// Get returns the value for key in ns, consulting enclosing stores when
// the local level has no entry. Returns nil when absent everywhere.
func (s *Store) Get(ns Namespace, key string) any {
	s.mu.Lock()
	v, ok := s.m[storeKey{ns, key}]
	s.mu.Unlock()
	if ok {
		return v
	}
	if s.parent != nil {
		return s.parent.Get(ns, key)
	}
	return nil
}

// Put stores a value at this store's level.
func (s *Store) Put(ns Namespace, key string, value any) {
	s.mu.Lock()
	s.m[storeKey{ns, key}] = value
	s.mu.Unlock()
}

// GetOrCompute returns the value for key, computing and caching it at this
// level when absent everywhere. The compute func runs under the store lock:
// it must not touch the same store.
func (s *Store) GetOrCompute(ns Namespace, key string, compute func() any) any {
	if s.parent != nil {
		s.mu.Lock()
		v, ok := s.m[storeKey{ns, key}]
		s.mu.Unlock()
		if ok {
			return v
		}
		if v := s.parent.Get(ns, key); v != nil {
			return v
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.m[storeKey{ns, key}]; ok {
		return v
	}
	v := compute()
	s.m[storeKey{ns, key}] = v
	return v
}

// Remove deletes the local entry for key and returns it, or nil when the
// level had none. Enclosing stores are not touched.
func (s *Store) Remove(ns Namespace, key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := storeKey{ns, key}
	v := s.m[k]
	delete(s.m, k)
	return v
}
