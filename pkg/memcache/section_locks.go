package mem

import (
	"sync"
	"time"
)

// SectionLockStore serializes regenerations per itinerary section. A lock is
// held from the moment a suggestion request is accepted until its merge
// resolves; the TTL is a safety net against a handler that never releases.
type SectionLockStore interface {
	// TryAcquire takes the lock for key if it is free or expired.
	TryAcquire(key string, ttl time.Duration) bool

	// Release frees the lock regardless of remaining TTL.
	Release(key string)

	// Held reads without acquiring.
	Held(key string) bool
}

type SectionLocks struct {
	mu   sync.Mutex
	data map[string]time.Time
}

func NewSectionLocks() *SectionLocks {
	return &SectionLocks{
		data: make(map[string]time.Time),
	}
}

func (s *SectionLocks) TryAcquire(key string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.data[key]
	if ok && time.Now().Before(expiresAt) {
		return false
	}
	s.data[key] = time.Now().Add(ttl)
	return true
}

func (s *SectionLocks) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *SectionLocks) Held(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.data[key]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(s.data, key)
		return false
	}
	return true
}
