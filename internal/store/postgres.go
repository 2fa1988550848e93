package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ugaemi/chatnoir-server/internal/result"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_results (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    winner TEXT NOT NULL,
    cat_moves INTEGER NOT NULL DEFAULT 0,
    blockers INTEGER NOT NULL DEFAULT 0,
    started_at TIMESTAMPTZ NOT NULL,
    ended_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_game_results_session_id ON game_results(session_id);
`

// PostgresStore implements ResultStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// Save inserts a finished game.
func (s *PostgresStore) Save(ctx context.Context, r *result.Result) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO game_results (id, session_id, winner, cat_moves, blockers, started_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.SessionID, r.Winner, r.CatMoves, r.Blockers, r.StartedAt, r.EndedAt)
	return err
}

// FindBySession returns the results recorded for a session, oldest first.
func (s *PostgresStore) FindBySession(ctx context.Context, sessionID string) ([]*result.Result, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, session_id, winner, cat_moves, blockers, started_at, ended_at
		 FROM game_results WHERE session_id = $1 ORDER BY ended_at`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*result.Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Stats returns win counts over all recorded games.
func (s *PostgresStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE winner = 'cat'),
		        COUNT(*) FILTER (WHERE winner = 'owner')
		 FROM game_results`).Scan(&st.Games, &st.CatWins, &st.OwnerWins)
	return st, err
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanResult(row pgx.Row) (*result.Result, error) {
	var r result.Result
	err := row.Scan(&r.ID, &r.SessionID, &r.Winner, &r.CatMoves, &r.Blockers, &r.StartedAt, &r.EndedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
