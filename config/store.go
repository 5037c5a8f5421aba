package config

import "sync/atomic"

// Store hands config snapshots from control goroutines to the frame loop without locking
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a store holding cfg
func NewStore(cfg Config) *Store {
	s := &Store{}
	s.Set(cfg)
	return s
}

// Load returns a copy of the current snapshot
func (s *Store) Load() Config {
	return *s.current.Load()
}

// Set replaces the snapshot
func (s *Store) Set(cfg Config) {
	c := cfg
	s.current.Store(&c)
}

// Update applies fn to a copy and publishes it, retrying if another writer raced
func (s *Store) Update(fn func(*Config)) Config {
	for {
		old := s.current.Load()
		next := *old
		fn(&next)
		if s.current.CompareAndSwap(old, &next) {
			return next
		}
	}
}
