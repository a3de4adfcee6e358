package nav

// PathsToTree groups pre-split paths into a nested node skeleton.
// Distinct first segments keep their first-seen order; only Name and
// Children are populated here, Annotate fills in the rest.
func PathsToTree(paths [][]string) []*Node {
	var nodes []*Node
	rests := make(map[string][][]string)
	byName := make(map[string]*Node)

	for _, p := range paths {
		p = trimTrailingEmpty(p)
		if len(p) == 0 {
			continue
		}
		name := p[0]
		n, ok := byName[name]
		if !ok {
			n = &Node{Name: name}
			byName[name] = n
			nodes = append(nodes, n)
		}
		if rest := trimTrailingEmpty(p[1:]); len(rest) > 0 {
			rests[name] = append(rests[name], rest)
		}
	}

	for _, n := range nodes {
		n.Children = PathsToTree(rests[n.Name])
	}
	return nodes
}

// WalkResult tells Walk what to do with the node it just visited.
type WalkResult int

const (
	Keep WalkResult = iota
	Remove
)

// WalkFunc is called for every node with its structural parent (nil at the
// root level) and 1-based depth.
type WalkFunc func(node, parent *Node, depth int) WalkResult

// Walk visits every node depth-first, siblings in reverse order, calling fn
// before descending. A node for which fn returns Remove is excised from its
// sibling list, but its own subtree is still visited with it as parent.
// The roots slice may be replaced, hence the pointer.
func Walk(roots *[]*Node, fn WalkFunc) {
	walkLevel(roots, nil, 1, fn)
}

func walkLevel(nodes *[]*Node, parent *Node, depth int, fn WalkFunc) {
	for i := len(*nodes) - 1; i >= 0; i-- {
		node := (*nodes)[i]
		if fn(node, parent, depth) == Remove {
			*nodes = removeAt(*nodes, i)
		}
		walkLevel(&node.Children, node, depth+1, fn)
	}
}

// removeAt returns a copy of nodes without index i. The backing array is
// never shared, so slices previously handed out (e.g. written onto records)
// keep their contents.
func removeAt(nodes []*Node, i int) []*Node {
	out := make([]*Node, 0, len(nodes)-1)
	out = append(out, nodes[:i]...)
	return append(out, nodes[i+1:]...)
}
