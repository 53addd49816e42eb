package inbox

import (
	"context"

	"github.com/agendly/agendly/libs/db"
	"github.com/jackc/pgx/v5/pgconn"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository implements inbox deduplication: each consumed event id is
// inserted once, and a unique violation marks a duplicate delivery.
type Repository struct {
	pool execer
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func newRepositoryWithExec(exec execer) *Repository {
	return &Repository{pool: exec}
}

// Record returns false when the event was already processed.
func (r *Repository) Record(ctx context.Context, eventID string, eventType string) (bool, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO inbox_events (event_id, event_type)
		VALUES ($1, $2)
	`, eventID, eventType)
	if err == nil {
		return true, nil
	}

	if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
		return false, nil
	}

	return false, err
}
