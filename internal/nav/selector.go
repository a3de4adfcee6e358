package nav

import (
	"strings"

	"github.com/ohler55/ojg/jp"
)

// selector reads one value out of a record: either a top-level field or,
// for names starting with "$", the first JSONPath match.
type selector struct {
	field string
	expr  jp.Expr
}

func newSelector(name string) *selector {
	if !strings.HasPrefix(name, "$") {
		return &selector{field: name}
	}
	x, err := jp.ParseString(name)
	if err != nil {
		// unparseable paths select nothing
		return &selector{}
	}
	return &selector{expr: x}
}

func (s *selector) get(rec Record) any {
	if rec == nil {
		return nil
	}
	if s.expr == nil {
		if s.field == "" {
			return nil
		}
		return rec[s.field]
	}
	results := s.expr.Get(map[string]any(rec))
	if len(results) == 0 {
		return nil
	}
	return results[0]
}
