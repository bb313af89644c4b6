package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS students (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	department TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendance (
	id SERIAL PRIMARY KEY,
	student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	student_name TEXT NOT NULL,
	date DATE NOT NULL,
	time TIME NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema creates the students and attendance tables if they do not
// exist. It is idempotent and safe to run on every process start; it never
// alters tables that already exist. Repository calls must not be served if
// this fails.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ensure schema: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	return tx.Commit(ctx)
}
