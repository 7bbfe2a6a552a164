// Package session owns session lifecycle: creation, persistence, per-session
// serialization of turns, and expiry.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is one conversation and its accumulated memory.
type Session struct {
	ID             string                    `json:"id"`
	UserID         string                    `json:"user_id,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	LastActivityAt time.Time                 `json:"last_activity_at"`
	Memory         memory.ConversationMemory `json:"memory"`
}

// Store persists sessions. Implementations must be safe for concurrent use.
type Store interface {
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes sessions whose last activity is before cutoff and
	// returns their ids.
	DeleteExpired(ctx context.Context, cutoff time.Time) ([]string, error)
	Count(ctx context.Context) (int, error)
	Close()
}

// InMemoryStore keeps sessions in a map. It is the default backend and the
// one tests use.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]Session)}
}

func (s *InMemoryStore) Save(_ context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *InMemoryStore) Load(_ context.Context, id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *InMemoryStore) DeleteExpired(_ context.Context, cutoff time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expired []string
	for id, sess := range s.sessions {
		if sess.LastActivityAt.Before(cutoff) {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
	}
	return expired, nil
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}

func (s *InMemoryStore) Close() {}
