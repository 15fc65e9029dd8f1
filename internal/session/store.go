package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/megahand-az/megahand-be/internal/models"
)

// Store holds server-side session records keyed by opaque token.
type Store interface {
	Create(userID int64, username string) models.Session
	Get(id string) (models.Session, bool)
	Destroy(id string)
	Prune() int
}

// MemoryStore is an in-memory Store implementation. It is injected at startup
// so tests can construct their own instance; there is no package-level state.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a MemoryStore whose sessions expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create establishes a new session for the given user and returns it.
func (s *MemoryStore) Create(userID int64, username string) models.Session {
	now := s.now()
	sess := models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get looks up a session by token. Expired records are treated as absent.
func (s *MemoryStore) Get(id string) (models.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || sess.Expired(s.now()) {
		return models.Session{}, false
	}
	return sess, true
}

// Destroy removes a session record. Destroying an unknown token is a no-op.
func (s *MemoryStore) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Prune removes all expired records and reports how many were dropped.
func (s *MemoryStore) Prune() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}

// Len reports the number of live records, expired ones included until pruned.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
