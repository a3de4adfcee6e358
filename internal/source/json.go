package source

import (
	"fmt"
	"io"
	"sort"

	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/navtree/internal/nav"
)

// LoadJSON reads a records document: either an array of objects each
// carrying a "path" key (order kept) or an object keyed by path (keys sorted,
// since JSON objects carry no order).
func LoadJSON(r io.Reader) (*nav.Records, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse records json: %w", err)
	}

	files := nav.NewRecords()
	switch v := doc.(type) {
	case []any:
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("record %d: not an object", i)
			}
			p, ok := obj["path"].(string)
			if !ok || p == "" {
				return nil, fmt.Errorf("record %d: missing path", i)
			}
			files.Add(p, nav.Record(obj))
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj, ok := v[k].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("record %s: not an object", k)
			}
			files.Add(k, nav.Record(obj))
		}
	default:
		return nil, fmt.Errorf("%w: records json must be an array or object", ErrUnsupported)
	}
	return files, nil
}
