package scripture

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLibrary retrieves verses from a curated table, for deployments
// where the corpus is managed outside the binary.
type PostgresLibrary struct {
	pool *pgxpool.Pool
}

func NewPostgresLibrary(ctx context.Context, dsn string) (*PostgresLibrary, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect scripture db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping scripture db: %w", err)
	}
	l := &PostgresLibrary{pool: pool}
	if err := l.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return l, nil
}

func (l *PostgresLibrary) initSchema(ctx context.Context) error {
	_, err := l.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS companion_verses (
			reference TEXT PRIMARY KEY,
			scripture TEXT NOT NULL,
			body      TEXT NOT NULL,
			emotions  TEXT[] NOT NULL DEFAULT '{}',
			concepts  TEXT[] NOT NULL DEFAULT '{}'
		)
	`)
	if err != nil {
		return fmt.Errorf("init scripture schema: %w", err)
	}
	return nil
}

// Search ranks verses by emotion tag match first, then concept overlap.
func (l *PostgresLibrary) Search(ctx context.Context, q Query) ([]Citation, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 2
	}
	rows, err := l.pool.Query(ctx, `
		SELECT reference, scripture, body,
		       (CASE WHEN $1 = ANY(emotions) THEN 3 ELSE 0 END)
		       + cardinality(ARRAY(SELECT unnest(concepts) INTERSECT SELECT unnest($2::text[]))) AS score
		FROM companion_verses
		WHERE $1 = ANY(emotions) OR concepts && $2::text[]
		ORDER BY score DESC, reference
		LIMIT $3
	`, q.Emotion, q.Concepts, limit)
	if err != nil {
		return nil, fmt.Errorf("search verses: %w", err)
	}
	defer rows.Close()

	var out []Citation
	for rows.Next() {
		var c Citation
		if err := rows.Scan(&c.Reference, &c.Scripture, &c.Text, &c.Score); err != nil {
			return nil, fmt.Errorf("scan verse: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verses: %w", err)
	}
	return out, nil
}

func (l *PostgresLibrary) Close() {
	l.pool.Close()
}

// NewRetriever picks the backend from the DSN: empty means the embedded
// library.
func NewRetriever(ctx context.Context, dsn string) (Retriever, error) {
	if dsn == "" {
		return NewLibrary(), nil
	}
	return NewPostgresLibrary(ctx, dsn)
}
