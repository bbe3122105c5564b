package conversation

import (
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store is the in-memory arena of dialogue scratchpads, keyed by telegram
// user id. Entries expire after the TTL so an abandoned dialogue does not
// pin memory. The mutex serializes read-modify-write steps so two updates
// for the same user cannot interleave.
type Store struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewStore(ttl, cleanupInterval time.Duration) *Store {
	return &Store{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// Get returns the scratchpad for the user, creating a fresh one in
// SelectingAction if none exists.
func (s *Store) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cache.Get(key(userID)); ok {
		return v.(*Session)
	}
	sess := NewSession(userID)
	s.cache.Set(key(userID), sess, cache.DefaultExpiration)
	return sess
}

// Update applies fn to the user's scratchpad under the store lock and
// refreshes its TTL.
func (s *Store) Update(userID int64, fn func(*Session)) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess *Session
	if v, ok := s.cache.Get(key(userID)); ok {
		sess = v.(*Session)
	} else {
		sess = NewSession(userID)
	}
	fn(sess)
	sess.UpdatedAt = time.Now()
	s.cache.Set(key(userID), sess, cache.DefaultExpiration)
	return sess
}

// Reset discards the user's scratchpad and returns a fresh one at the menu.
func (s *Store) Reset(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := NewSession(userID)
	s.cache.Set(key(userID), sess, cache.DefaultExpiration)
	return sess
}

// Delete evicts the user's scratchpad entirely.
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(key(userID))
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
