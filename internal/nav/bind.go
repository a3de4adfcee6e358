package nav

import (
	"slices"
)

// BindRecords writes tree structure back onto the bound records and sets
// every node's Parent. pathProperty receives the node path; childrenProperty
// receives a map of tree name to that node's children, so a record shared by
// several trees keeps one list per tree. Empty property names skip the write.
func BindRecords(tree *[]*Node, files *Records, pathProperty, childrenProperty, treeName string) {
	Walk(tree, func(node, parent *Node, depth int) WalkResult {
		node.Parent = parent
		rec, ok := files.Get(node.Path)
		if !ok {
			return Keep
		}
		if pathProperty != "" {
			rec[pathProperty] = node.Path
		}
		if childrenProperty != "" {
			byTree, ok := rec[childrenProperty].(map[string][]*Node)
			if !ok {
				byTree = make(map[string][]*Node)
				rec[childrenProperty] = byTree
			}
			// snapshot: later pruning must not show through
			byTree[treeName] = slices.Clone(node.Children)
		}
		return Keep
	})
}

// SetBreadcrumbs gives every node its ancestor chain, root first, and copies
// it onto the bound record under property when property is non-empty.
func SetBreadcrumbs(tree *[]*Node, property string) {
	Walk(tree, func(node, parent *Node, depth int) WalkResult {
		var crumbs []*Node
		if parent != nil {
			crumbs = make([]*Node, 0, len(parent.Breadcrumb)+1)
			crumbs = append(crumbs, parent.Breadcrumb...)
			crumbs = append(crumbs, parent)
		} else {
			crumbs = []*Node{}
		}
		node.Breadcrumb = crumbs
		if property != "" && node.Record != nil {
			node.Record[property] = crumbs
		}
		return Keep
	})
}
