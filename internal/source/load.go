// Package source loads host records from SQLite, JSON or a directory tree.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/agentic-research/navtree/internal/nav"
)

var ErrUnsupported = errors.New("unsupported record source")

// Load picks a loader from path: a directory is walked, .db/.sqlite files
// are read as SQLite and .json files as a records document.
func Load(path string) (*nav.Records, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadFS(osfs.New(path), "/")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return LoadSQLite(path)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }() // read-only
		return LoadJSON(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
}
