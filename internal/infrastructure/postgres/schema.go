package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias DDL idempotentes. chat_messages lleva un seq BIGSERIAL para
// desempatar por orden de inserción cuando los timestamps coinciden.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            VARCHAR PRIMARY KEY,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		role          TEXT NOT NULL,
		phone         TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
	`CREATE TABLE IF NOT EXISTS worker_profiles (
		id           VARCHAR PRIMARY KEY,
		user_id      VARCHAR NOT NULL REFERENCES users (id),
		skills       TEXT NOT NULL,
		experience   TEXT NOT NULL,
		location     TEXT NOT NULL,
		availability TEXT NOT NULL DEFAULT 'Available Now',
		description  TEXT NOT NULL DEFAULT '',
		hourly_rate  TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS employer_profiles (
		id           VARCHAR PRIMARY KEY,
		user_id      VARCHAR NOT NULL REFERENCES users (id),
		company_name TEXT NOT NULL,
		industry     TEXT NOT NULL,
		job_needs    TEXT NOT NULL DEFAULT '',
		location     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS connections (
		id           VARCHAR PRIMARY KEY,
		employer_id  VARCHAR NOT NULL REFERENCES users (id),
		worker_id    VARCHAR NOT NULL REFERENCES users (id),
		status       TEXT NOT NULL DEFAULT 'connected',
		last_project TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		seq       BIGSERIAL,
		id        VARCHAR PRIMARY KEY,
		user_id   VARCHAR NOT NULL,
		user_name TEXT NOT NULL,
		message   TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id         VARCHAR PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		subject    TEXT NOT NULL,
		message    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate crea las tablas si no existen. Suficiente para un esquema
// append-only sin versiones; no hay migraciones destructivas.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar schema: %w", err)
		}
	}
	return nil
}
