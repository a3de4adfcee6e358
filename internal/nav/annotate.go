package nav

// Annotate stamps every node with its full path, depth and kind, binding the
// record found at that path in files. files is the complete record set, not
// the filtered subset the tree was built from.
func Annotate(tree *[]*Node, files *Records) {
	Walk(tree, func(node, parent *Node, depth int) WalkResult {
		node.Path = joinPath(parent, node.Name)
		node.Depth = depth
		node.Kind = KindBranch
		if rec, ok := files.Get(node.Path); ok {
			node.Kind = KindLeaf
			node.Record = rec
			node.RecordKey = node.Path
		}
		return Keep
	})
}
