package nav

import (
	"github.com/RoaringBitmap/roaring"
)

// Coverage tracks, by record index, which records a tree's filter selected
// and which ended up bound to a reachable node.
type Coverage struct {
	Matched *roaring.Bitmap
	Bound   *roaring.Bitmap

	files *Records
}

func newCoverage(files, matched *Records) *Coverage {
	c := &Coverage{
		Matched: roaring.New(),
		Bound:   roaring.New(),
		files:   files,
	}
	matched.Each(func(p string, _ Record) {
		if i, ok := files.Index(p); ok {
			c.Matched.Add(i)
		}
	})
	return c
}

// collect marks every record bound to a node reachable from tree.
func (c *Coverage) collect(tree []*Node) {
	for _, n := range tree {
		if n.Record != nil {
			if i, ok := c.files.Index(n.RecordKey); ok {
				c.Bound.Add(i)
			}
		}
		c.collect(n.Children)
	}
}

// Unreached returns the paths of records the filter selected that no
// reachable node is bound to, in record order.
func (c *Coverage) Unreached() []string {
	missing := roaring.AndNot(c.Matched, c.Bound)
	paths := c.files.Paths()
	out := make([]string, 0, missing.GetCardinality())
	it := missing.Iterator()
	for it.HasNext() {
		i := it.Next()
		if int(i) < len(paths) {
			out = append(out, paths[i])
		}
	}
	return out
}
