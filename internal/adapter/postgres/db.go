package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS listing_records (
		id BIGSERIAL PRIMARY KEY,
		url TEXT NOT NULL UNIQUE,
		listing_id TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		rooms_text TEXT NOT NULL DEFAULT '',
		price NUMERIC,
		area NUMERIC,
		full_rooms INTEGER NOT NULL DEFAULT 0,
		half_rooms INTEGER NOT NULL DEFAULT 0,
		district TEXT NOT NULL DEFAULT '',
		city_area TEXT NOT NULL DEFAULT '',
		condition TEXT NOT NULL DEFAULT '',
		floor TEXT NOT NULL DEFAULT '',
		building_storeys TEXT NOT NULL DEFAULT '',
		lift TEXT NOT NULL DEFAULT '',
		heating TEXT NOT NULL DEFAULT '',
		view TEXT NOT NULL DEFAULT '',
		orientation TEXT NOT NULL DEFAULT '',
		parking TEXT NOT NULL DEFAULT '',
		balcony TEXT NOT NULL DEFAULT '',
		air_conditioning TEXT NOT NULL DEFAULT '',
		ceiling_height TEXT NOT NULL DEFAULT '',
		utility_class TEXT NOT NULL DEFAULT '',
		bath_toilet TEXT NOT NULL DEFAULT '',
		attic TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		extracted_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS failed_urls (
		id BIGSERIAL PRIMARY KEY,
		url TEXT NOT NULL UNIQUE,
		pipeline TEXT NOT NULL,
		stage TEXT NOT NULL,
		failure_reason TEXT NOT NULL,
		http_status_code INTEGER NOT NULL DEFAULT 0,
		last_attempt_timestamp TIMESTAMPTZ NOT NULL,
		attempt_count INTEGER NOT NULL DEFAULT 1
	);
`

// Connect opens a pool, verifies it and ensures the tables exist.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
