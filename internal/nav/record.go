package nav

import "strings"

// Record is a host-owned, string-keyed entry. The pipeline reads fields from
// records and adds fields to them; it never creates or removes records.
type Record map[string]any

// Records is an insertion-ordered set of records keyed by path. Insertion
// order is the tie-break for every stable sort downstream.
type Records struct {
	order  []string
	byPath map[string]Record
	index  map[string]uint32
}

// NewRecords returns an empty record set.
func NewRecords() *Records {
	return &Records{
		byPath: make(map[string]Record),
		index:  make(map[string]uint32),
	}
}

// Add inserts or replaces the record at path. Replacing keeps the original position.
func (r *Records) Add(path string, rec Record) {
	if rec == nil {
		rec = Record{}
	}
	if _, ok := r.byPath[path]; !ok {
		r.index[path] = uint32(len(r.order))
		r.order = append(r.order, path)
	}
	r.byPath[path] = rec
}

// Get returns the record at path.
func (r *Records) Get(path string) (Record, bool) {
	rec, ok := r.byPath[path]
	return rec, ok
}

// Index returns the insertion position of path.
func (r *Records) Index(path string) (uint32, bool) {
	i, ok := r.index[path]
	return i, ok
}

// Paths returns the record keys in insertion order.
func (r *Records) Paths() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of records.
func (r *Records) Len() int {
	return len(r.order)
}

// Each calls fn for every record in insertion order.
func (r *Records) Each(fn func(path string, rec Record)) {
	for _, p := range r.order {
		fn(p, r.byPath[p])
	}
}

// NormalizeSeparators rewrites backslashes in every key to forward slashes,
// rekeying in place. A rekeyed record keeps its position. When two keys
// normalize to the same path, the first position holds the later record.
func (r *Records) NormalizeSeparators() {
	changed := false
	for _, p := range r.order {
		if strings.Contains(p, `\`) {
			changed = true
			break
		}
	}
	if !changed {
		return
	}

	old := r.order
	oldByPath := r.byPath
	r.order = make([]string, 0, len(old))
	r.byPath = make(map[string]Record, len(old))
	r.index = make(map[string]uint32, len(old))

	for _, p := range old {
		key := strings.ReplaceAll(p, `\`, "/")
		rec := oldByPath[p]
		if _, dup := r.byPath[key]; dup {
			// keep first position, latest record
			r.byPath[key] = rec
			continue
		}
		r.index[key] = uint32(len(r.order))
		r.order = append(r.order, key)
		r.byPath[key] = rec
	}
}

// SplitPath splits a slash-delimited key into segments, dropping trailing
// empty segments so "a/" and "a" resolve to the same node.
func SplitPath(p string) []string {
	return trimTrailingEmpty(strings.Split(p, "/"))
}

func trimTrailingEmpty(segs []string) []string {
	n := len(segs)
	for n > 0 && segs[n-1] == "" {
		n--
	}
	return segs[:n]
}
