package internal

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Archive stores generated scripts durably so past results remain readable
// after the process exits. It lives in its own SQLite file, separate from
// the config document.
type Archive struct {
	db *sql.DB
}

// ArchiveEntry is one stored generation result.
type ArchiveEntry struct {
	ID        int64
	Topic     string
	Model     string
	Output    string
	CreatedAt time.Time
}

// OpenArchive opens (creating if needed) the archive database at path.
func OpenArchive(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &ArchiveError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &ArchiveError{Op: "open", Err: err}
	}
	schema := `
	CREATE TABLE IF NOT EXISTS generations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		topic TEXT NOT NULL,
		model TEXT NOT NULL,
		output TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, &ArchiveError{Op: "open", Err: err}
	}
	return &Archive{db: db}, nil
}

// Append stores one generation result.
func (a *Archive) Append(topic string, model Model, output string) error {
	_, err := a.db.Exec(
		"INSERT INTO generations (topic, model, output, created_at) VALUES (?, ?, ?, ?)",
		topic, string(model), output, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return &ArchiveError{Op: "append", Err: err}
	}
	return nil
}

// List returns up to limit entries, newest first.
func (a *Archive) List(limit int) ([]ArchiveEntry, error) {
	rows, err := a.db.Query(
		"SELECT id, topic, model, output, created_at FROM generations ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, &ArchiveError{Op: "list", Err: err}
	}
	defer rows.Close()

	var entries []ArchiveEntry
	for rows.Next() {
		var e ArchiveEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Topic, &e.Model, &e.Output, &createdAt); err != nil {
			return nil, &ArchiveError{Op: "list", Err: err}
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &ArchiveError{Op: "list", Err: err}
	}
	return entries, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}
