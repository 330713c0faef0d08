package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

// HandStore records finished hands in Postgres. It satisfies the
// registry's ResultSink; persistence stays outside the game core.
type HandStore struct {
	db *sql.DB
}

// OpenHandStore connects and makes sure the results table exists.
func OpenHandStore(dsn string) (*HandStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS hand_results (
			id         BIGSERIAL PRIMARY KEY,
			game_id    BIGINT      NOT NULL,
			winner_id  BIGINT      NOT NULL,
			amount     BIGINT      NOT NULL,
			hand       TEXT        NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &HandStore{db: db}, nil
}

// RecordHandResult inserts one showdown outcome.
func (s *HandStore) RecordHandResult(ctx context.Context, gameID, winnerID, amount int64, hand string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO hand_results (game_id, winner_id, amount, hand) VALUES ($1, $2, $3, $4)`,
		gameID, winnerID, amount, hand)
	return err
}

// Close releases the connection pool.
func (s *HandStore) Close() error {
	return s.db.Close()
}
