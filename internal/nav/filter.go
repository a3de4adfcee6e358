package nav

// FilterRecords returns the records whose field equals value, or, when the
// field holds a list, contains it. Order is preserved. field may be a
// JSONPath expression (see ByField).
func FilterRecords(files *Records, field, value string) *Records {
	sel := newSelector(field)
	out := NewRecords()
	files.Each(func(p string, rec Record) {
		if matches(sel.get(rec), value) {
			out.Add(p, rec)
		}
	})
	return out
}

func matches(v any, value string) bool {
	switch groups := v.(type) {
	case string:
		return groups == value
	case []string:
		for _, g := range groups {
			if g == value {
				return true
			}
		}
	case []any:
		for _, g := range groups {
			if s, ok := g.(string); ok && s == value {
				return true
			}
		}
	}
	return false
}
