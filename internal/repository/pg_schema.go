package repository

import (
	"context"
	"errors"
)

// Create-if-absent schema, applied once at startup. The UNIQUE (habit_id, date)
// constraint backs the atomic toggle upsert.
var pgSchema = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_date DATE NOT NULL DEFAULT CURRENT_DATE
	);`,
	`CREATE TABLE IF NOT EXISTS habit_entries (
		id BIGSERIAL PRIMARY KEY,
		habit_id BIGINT NOT NULL REFERENCES habits (id),
		date DATE NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (habit_id, date)
	);`,
}

func ensurePGSchema(conn PgConnection) error {
	ctx := context.Background()
	for _, stmt := range pgSchema {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return errors.New("applying schema statement error: " + err.Error())
		}
	}
	return nil
}
