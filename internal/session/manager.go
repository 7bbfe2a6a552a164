package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/pkg/log"
)

// Manager layers session lifecycle on a Store: id allocation, TTL expiry,
// and per-session serialization so concurrent turns on the same session
// never interleave.
type Manager struct {
	store Store
	ttl   time.Duration

	mu    sync.Mutex
	locks map[string]*sessionLock

	// OnExpire is invoked with each expired session id from the janitor.
	OnExpire func(id string)
	// OnCount is invoked with the live session count after changes.
	OnCount func(n int)
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
		locks: make(map[string]*sessionLock),
	}
}

// Create allocates a new session seeded from the profile.
func (m *Manager) Create(ctx context.Context, userID string, profile memory.Profile) (Session, error) {
	now := time.Now().UTC()
	sess := Session{
		ID:             uuid.NewString(),
		UserID:         userID,
		CreatedAt:      now,
		LastActivityAt: now,
		Memory:         memory.New(profile),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	m.reportCount(ctx)
	return sess, nil
}

// Get returns a copy of the session. Mutations must go through WithSession.
func (m *Manager) Get(ctx context.Context, id string) (Session, error) {
	sess, err := m.store.Load(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if m.expired(sess) {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// Delete removes the session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	m.reportCount(ctx)
	return nil
}

// WithSession runs fn with exclusive access to the session. The session is
// loaded fresh, fn mutates the copy, and the copy is saved only when fn
// returns nil, so a failed turn leaves stored state untouched.
func (m *Manager) WithSession(ctx context.Context, id string, fn func(*Session) error) error {
	l := m.acquire(id)
	defer m.release(id, l)

	l.mu.Lock()
	defer l.mu.Unlock()

	sess, err := m.store.Load(ctx, id)
	if err != nil {
		return err
	}
	if m.expired(sess) {
		return ErrNotFound
	}
	if err := fn(&sess); err != nil {
		return err
	}
	sess.LastActivityAt = time.Now().UTC()
	if err := m.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ActiveCount returns the number of stored sessions.
func (m *Manager) ActiveCount(ctx context.Context) int {
	n, err := m.store.Count(ctx)
	if err != nil {
		return 0
	}
	return n
}

// Janitor deletes expired sessions every interval until ctx is done.
func (m *Manager) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *Manager) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-m.ttl)
	ids, err := m.store.DeleteExpired(ctx, cutoff)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("session sweep failed")
		return
	}
	if len(ids) == 0 {
		return
	}
	log.FromCtx(ctx).Info().Int("expired", len(ids)).Msg("sessions expired")
	if m.OnExpire != nil {
		for _, id := range ids {
			m.OnExpire(id)
		}
	}
	m.reportCount(ctx)
}

func (m *Manager) expired(sess Session) bool {
	return m.ttl > 0 && time.Since(sess.LastActivityAt) > m.ttl
}

func (m *Manager) reportCount(ctx context.Context) {
	if m.OnCount != nil {
		m.OnCount(m.ActiveCount(ctx))
	}
}

func (m *Manager) acquire(id string) *sessionLock {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[id]
	if !ok {
		l = &sessionLock{}
		m.locks[id] = l
	}
	l.refs++
	return l
}

func (m *Manager) release(id string, l *sessionLock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, id)
	}
}
