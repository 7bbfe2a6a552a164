package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
)

// PostgresStore persists sessions with the memory document as JSONB.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect session db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping session db: %w", err)
	}
	s := &PostgresStore{pool: pool}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS companion_sessions (
			id               TEXT PRIMARY KEY,
			user_id          TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL,
			last_activity_at TIMESTAMPTZ NOT NULL,
			memory           JSONB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("init session schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, sess Session) error {
	doc, err := json.Marshal(sess.Memory)
	if err != nil {
		return fmt.Errorf("encode memory: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO companion_sessions (id, user_id, created_at, last_activity_at, memory)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET last_activity_at = $4, memory = $5
	`, sess.ID, sess.UserID, sess.CreatedAt, sess.LastActivityAt, doc)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, id string) (Session, error) {
	var sess Session
	var doc []byte
	err := s.pool.QueryRow(ctx, `
		SELECT id, user_id, created_at, last_activity_at, memory
		FROM companion_sessions WHERE id = $1
	`, id).Scan(&sess.ID, &sess.UserID, &sess.CreatedAt, &sess.LastActivityAt, &doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	var mem memory.ConversationMemory
	if err := json.Unmarshal(doc, &mem); err != nil {
		return Session{}, fmt.Errorf("decode memory: %w", err)
	}
	sess.Memory = mem
	return sess, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM companion_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteExpired(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		DELETE FROM companion_sessions WHERE last_activity_at < $1 RETURNING id
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("delete expired: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan expired id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expired: %w", err)
	}
	return ids, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM companion_sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// NewStore picks the backend from the DSN: empty means in-memory.
func NewStore(ctx context.Context, dsn string) (Store, error) {
	if dsn == "" {
		return NewInMemoryStore(), nil
	}
	return NewPostgresStore(ctx, dsn)
}
