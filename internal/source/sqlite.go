package source

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/agentic-research/navtree/internal/nav"
	_ "modernc.org/sqlite"
)

// StreamSQLite iterates over the results table in insertion order, calling fn
// with each row's path and decoded record.
func StreamSQLite(dbPath string, fn func(path string, rec nav.Record) error) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }() // safe to ignore

	rows, err := db.Query("SELECT id, record FROM results ORDER BY rowid")
	if err != nil {
		return fmt.Errorf("query results: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	for rows.Next() {
		var id string
		var raw sql.NullString
		if err := rows.Scan(&id, &raw); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		rec := nav.Record{}
		if raw.Valid && raw.String != "" {
			if err := json.Unmarshal([]byte(raw.String), &rec); err != nil {
				return fmt.Errorf("parse record %s: %w", id, err)
			}
		}
		if err := fn(id, rec); err != nil {
			return err
		}
	}
	return rows.Err()
}

// LoadSQLite reads every row of the results table into a record set keyed by id.
func LoadSQLite(dbPath string) (*nav.Records, error) {
	files := nav.NewRecords()
	err := StreamSQLite(dbPath, func(path string, rec nav.Record) error {
		files.Add(path, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
