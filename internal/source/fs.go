package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/agentic-research/navtree/internal/nav"
)

// yamlFrontMatter decodes "---" blocks with yaml.v3 so nested mappings come
// back as map[string]any, which JSONPath selectors can walk.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// LoadFS walks root on fsys in lexical order and turns every regular file
// into a record keyed by its slash path relative to root. Records carry
// "contents", "ext" and "size", plus any YAML front matter keys.
func LoadFS(fsys billy.Filesystem, root string) (*nav.Records, error) {
	files := nav.NewRecords()
	err := util.Walk(fsys, root, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", name, err)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, name)
		if err != nil {
			return fmt.Errorf("relative path %s: %w", name, err)
		}
		rec, err := readRecord(fsys, name)
		if err != nil {
			return err
		}
		files.Add(filepath.ToSlash(rel), rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func readRecord(fsys billy.Filesystem, name string) (nav.Record, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }() // read-only

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	rec, body, err := parseFrontMatter(content)
	if err != nil {
		return nil, fmt.Errorf("parse front matter %s: %w", name, err)
	}
	rec["contents"] = string(body)
	rec["ext"] = strings.TrimPrefix(path.Ext(filepath.ToSlash(name)), ".")
	rec["size"] = len(content)
	return rec, nil
}

// parseFrontMatter splits a leading YAML block off content. Without one the
// record is empty and body is the whole content.
func parseFrontMatter(content []byte) (nav.Record, []byte, error) {
	rec := nav.Record{}
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	body, err := frontmatter.Parse(bytes.NewReader(content), &rec, yamlFrontMatter)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		rec = nav.Record{}
	}
	return rec, body, nil
}
