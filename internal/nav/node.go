package nav

import (
	"encoding/json"
)

// Kind distinguishes record-bearing nodes from pure directory nodes.
type Kind int

const (
	KindBranch Kind = iota // no record at this path
	KindLeaf               // bound to a record
)

func (k Kind) String() string {
	if k == KindLeaf {
		return "leaf"
	}
	return "branch"
}

// Node is one path segment's position in a navigation tree.
// Children are owned by the node; Parent and Breadcrumb are back-references.
type Node struct {
	Name  string
	Path  string
	Kind  Kind
	Depth int // 1-based, roots are 1

	Record    Record // nil for branches
	RecordKey string // key of Record in the source set

	Children   []*Node
	Parent     *Node   // set by BindRecords
	Breadcrumb []*Node // ancestors, root first

	// AddTrailingSlash marks a node that took over a collapsed permalink child.
	AddTrailingSlash bool
}

// IsLeaf reports whether a record is bound to the node.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindLeaf
}

// BreadcrumbPaths returns the paths of the node's ancestors, root first.
func (n *Node) BreadcrumbPaths() []string {
	out := make([]string, len(n.Breadcrumb))
	for i, b := range n.Breadcrumb {
		out[i] = b.Path
	}
	return out
}

// joinPath is the single place node paths are built from segments.
func joinPath(parent *Node, name string) string {
	if parent == nil {
		return name
	}
	return parent.Path + "/" + name
}

type nodeJSON struct {
	Name             string   `json:"name"`
	Path             string   `json:"path"`
	Kind             string   `json:"kind"`
	Depth            int      `json:"depth"`
	Record           string   `json:"record,omitempty"`
	AddTrailingSlash bool     `json:"add_trailing_slash,omitempty"`
	Breadcrumb       []string `json:"breadcrumb"`
	Children         []*Node  `json:"children"`
}

// MarshalJSON flattens back-references to paths. Records are referenced by
// key since they hold node lists of their own.
func (n *Node) MarshalJSON() ([]byte, error) {
	children := n.Children
	if children == nil {
		children = []*Node{}
	}
	return json.Marshal(nodeJSON{
		Name:             n.Name,
		Path:             n.Path,
		Kind:             n.Kind.String(),
		Depth:            n.Depth,
		Record:           n.RecordKey,
		AddTrailingSlash: n.AddTrailingSlash,
		Breadcrumb:       n.BreadcrumbPaths(),
		Children:         children,
	})
}
