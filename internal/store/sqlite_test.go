package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/navtree/internal/nav"
)

func buildResult(t *testing.T) *nav.Result {
	t.Helper()
	files := nav.NewRecords()
	for _, p := range []string{"guide", "guide/b", "guide/a", "faq"} {
		files.Add(p, nav.Record{})
	}
	return nav.NewRunner(nav.DefaultSettings(), []nav.TreeConfig{nav.DefaultTreeConfig("main")}).Run(files, nil)
}

func TestWriter_WriteResult(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nav.db")
	w, err := NewWriter(dbPath)
	require.NoError(t, err)

	res := buildResult(t)
	require.NoError(t, w.WriteResult(res))
	// rewriting replaces rows instead of duplicating them
	require.NoError(t, w.WriteResult(res))
	require.NoError(t, w.Close())

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM nav_nodes WHERE tree = 'main'").Scan(&count))
	assert.Equal(t, 4, count)

	rows, err := db.Query(`SELECT id, position, depth, breadcrumb FROM nav_nodes
		WHERE tree = 'main' AND parent_id = 'guide' ORDER BY position`)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var ids, crumbs []string
	for rows.Next() {
		var id, crumb string
		var pos, depth int
		require.NoError(t, rows.Scan(&id, &pos, &depth, &crumb))
		assert.Equal(t, 2, depth)
		ids = append(ids, id)
		crumbs = append(crumbs, crumb)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"guide/a", "guide/b"}, ids)
	assert.Equal(t, []string{`["guide"]`, `["guide"]`}, crumbs)

	var parent sql.NullString
	var recordKey string
	require.NoError(t, db.QueryRow("SELECT parent_id, record_key FROM nav_nodes WHERE id = 'faq'").Scan(&parent, &recordKey))
	assert.False(t, parent.Valid)
	assert.Equal(t, "faq", recordKey)
}

func TestWriter_Trailing(t *testing.T) {
	files := nav.NewRecords()
	files.Add("contact/index.html", nav.Record{})
	settings := nav.DefaultSettings()
	settings.Permalinks = true
	res := nav.NewRunner(settings, []nav.TreeConfig{nav.DefaultTreeConfig("main")}).Run(files, nil)

	dbPath := filepath.Join(t.TempDir(), "nav.db")
	w, err := NewWriter(dbPath)
	require.NoError(t, err)
	require.NoError(t, w.WriteResult(res))
	require.NoError(t, w.Close())

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var trailing int
	var recordKey string
	require.NoError(t, db.QueryRow("SELECT trailing, record_key FROM nav_nodes WHERE id = 'contact'").Scan(&trailing, &recordKey))
	assert.Equal(t, 1, trailing)
	assert.Equal(t, "contact/index.html", recordKey)
}
