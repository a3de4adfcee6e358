package nav

import (
	"path"
)

// CollapsePermalinks undoes directory-style permalinks (about.html rewritten
// to about/index.html): a childless leaf below depth 1 hands its record to
// its parent, the parent takes the leaf's directory as its path and is marked
// with AddTrailingSlash, and the leaf is removed. Leaves with children and
// root-level leaves are left alone.
func CollapsePermalinks(tree *[]*Node) {
	Walk(tree, func(node, parent *Node, depth int) WalkResult {
		if node.Record == nil || node.Depth <= 1 || len(node.Children) > 0 || parent == nil {
			return Keep
		}
		node.Path = path.Dir(node.Path)
		parent.Path = node.Path
		parent.Record = node.Record
		parent.RecordKey = node.RecordKey
		parent.Kind = KindLeaf
		parent.AddTrailingSlash = true
		return Remove
	})
}

// RemoveDirs drops every branch node. Descendants of a dropped branch are
// not reparented, so they leave the reachable tree with it.
func RemoveDirs(tree *[]*Node) {
	Walk(tree, func(node, parent *Node, depth int) WalkResult {
		if node.Kind == KindBranch {
			return Remove
		}
		return Keep
	})
}
