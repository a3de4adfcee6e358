// Package store exports built navigation trees to SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/agentic-research/navtree/internal/nav"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS nav_nodes (
	tree TEXT NOT NULL,
	id TEXT NOT NULL,
	parent_id TEXT,
	name TEXT NOT NULL,
	kind INTEGER NOT NULL,
	depth INTEGER NOT NULL,
	position INTEGER NOT NULL,
	record_key TEXT,
	trailing INTEGER NOT NULL DEFAULT 0,
	breadcrumb JSON,
	PRIMARY KEY (tree, id)
);
CREATE INDEX IF NOT EXISTS idx_nav_parent ON nav_nodes(tree, parent_id, position);
`

// Writer writes trees into a nav_nodes table, one transaction per tree.
type Writer struct {
	db *sql.DB
}

// NewWriter opens (or creates) dbPath and ensures the schema exists.
func NewWriter(dbPath string) (*Writer, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Writer{db: db}, nil
}

// WriteResult replaces the stored rows of every tree in res.
func (w *Writer) WriteResult(res *nav.Result) error {
	for _, name := range res.Names {
		if err := w.WriteTree(name, res.Trees[name]); err != nil {
			return err
		}
	}
	return nil
}

// WriteTree replaces the stored rows of one tree. Rows whose id repeats
// (a permalink parent taking its child's path) keep the last write.
func (w *Writer) WriteTree(name string, roots []*nav.Node) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM nav_nodes WHERE tree = ?", name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear tree %s: %w", name, err)
	}
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO nav_nodes
			(tree, id, parent_id, name, kind, depth, position, record_key, trailing, breadcrumb)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	if err := insertLevel(stmt, name, nil, roots); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertLevel(stmt *sql.Stmt, tree string, parent *nav.Node, nodes []*nav.Node) error {
	var parentID *string
	if parent != nil {
		p := parent.Path
		parentID = &p
	}
	for i, n := range nodes {
		var recordKey *string
		if n.Record != nil {
			k := n.RecordKey
			recordKey = &k
		}
		crumbs, err := json.Marshal(n.BreadcrumbPaths())
		if err != nil {
			return fmt.Errorf("encode breadcrumb %s: %w", n.Path, err)
		}
		trailing := 0
		if n.AddTrailingSlash {
			trailing = 1
		}
		if _, err := stmt.Exec(tree, n.Path, parentID, n.Name, int(n.Kind), n.Depth, i, recordKey, trailing, string(crumbs)); err != nil {
			return fmt.Errorf("insert %s/%s: %w", tree, n.Path, err)
		}
		if err := insertLevel(stmt, tree, n, n.Children); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database.
func (w *Writer) Close() error {
	return w.db.Close()
}
