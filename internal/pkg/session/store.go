// Package session holds the signed-in user markers for the process lifetime.
// A marker is an opaque token the client keeps in tab-scoped storage; it does
// not survive a restart, since the database it refers to does not either.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hrlite/crm-backend-go/internal/domain/user"
)

type Session struct {
	Token     string
	User      user.User
	CreatedAt time.Time
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]Session),
	}
}

// Create mints a new opaque token bound to the given user.
func (s *Store) Create(u user.User) Session {
	sess := Session{
		Token:     uuid.NewString(),
		User:      u,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

func (s *Store) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok
}

// Delete removes a session marker. Deleting an unknown token is a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
