package nav

import (
	"testing"
)

func recordsOf(paths ...string) *Records {
	rs := NewRecords()
	for _, p := range paths {
		rs.Add(p, Record{})
	}
	return rs
}

func treeOf(paths ...string) []*Node {
	split := make([][]string, len(paths))
	for i, p := range paths {
		split[i] = SplitPath(p)
	}
	return PathsToTree(split)
}

// annotatedTree builds a tree over every record and annotates it.
func annotatedTree(files *Records) []*Node {
	nodes := treeOf(files.Paths()...)
	Annotate(&nodes, files)
	return nodes
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func paths(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Path
	}
	return out
}

func findNode(t *testing.T, nodes []*Node, path string) *Node {
	t.Helper()
	var found *Node
	var visit func([]*Node)
	visit = func(ns []*Node) {
		for _, n := range ns {
			if n.Path == path && found == nil {
				found = n
			}
			visit(n.Children)
		}
	}
	visit(nodes)
	if found == nil {
		t.Fatalf("node %q not found", path)
	}
	return found
}

func allNodes(nodes []*Node) []*Node {
	var out []*Node
	for _, n := range nodes {
		out = append(out, n)
		out = append(out, allNodes(n.Children)...)
	}
	return out
}
