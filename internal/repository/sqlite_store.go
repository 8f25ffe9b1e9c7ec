package repository

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/hopfield/habitrabbit/pkg/cleanup"
)

// Create-if-absent schema for the file-backed store. Dates and timestamps are
// kept as TEXT ("YYYY-MM-DD" / RFC3339); lexicographic order matches
// chronological order for both.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_date TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS habit_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		habit_id INTEGER NOT NULL REFERENCES habits (id),
		date TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		UNIQUE (habit_id, date)
	);`,
}

// NewSQLiteDB opens (creating if absent) the database file at path, applies
// the schema and registers a cleanup job closing the handle.
func NewSQLiteDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.New("creating database directory error: " + err.Error())
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.New("opening sqlite database error: " + err.Error())
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.New("pinging sqlite database error: " + err.Error())
	}
	for _, stmt := range sqliteSchema {
		if _, err = db.Exec(stmt); err != nil {
			db.Close()
			return nil, errors.New("applying schema statement error: " + err.Error())
		}
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite database",
		F:    db.Close,
	})
	return db, nil
}
