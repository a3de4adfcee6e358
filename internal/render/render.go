// Package render prints built navigation trees.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ddddddO/gtree"

	"github.com/agentic-research/navtree/internal/nav"
)

// Text draws one tree with box-drawing branches, rooted at the tree name.
// Branch nodes and collapsed permalink parents get a trailing slash.
func Text(w io.Writer, name string, roots []*nav.Node) error {
	root := gtree.NewRoot(name)
	addNodes(root, roots)
	if err := gtree.OutputFromRoot(w, root); err != nil {
		return fmt.Errorf("render tree %s: %w", name, err)
	}
	return nil
}

// AllText draws every tree of res in configuration order.
func AllText(w io.Writer, res *nav.Result) error {
	for _, name := range res.Names {
		if err := Text(w, name, res.Trees[name]); err != nil {
			return err
		}
	}
	return nil
}

func addNodes(parent *gtree.Node, nodes []*nav.Node) {
	for _, n := range nodes {
		addNodes(parent.Add(Label(n)), n.Children)
	}
}

// Label is the display text of a node.
func Label(n *nav.Node) string {
	label := n.Name
	if label == "" {
		label = "."
	}
	if n.AddTrailingSlash || n.Kind == nav.KindBranch {
		label += "/"
	}
	return label
}

type document struct {
	Trees map[string][]*nav.Node `json:"trees"`
	Order []string               `json:"order"`
}

// JSON writes every tree of res as one indented document.
func JSON(w io.Writer, res *nav.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Trees: res.Trees, Order: res.Names}); err != nil {
		return fmt.Errorf("encode trees: %w", err)
	}
	return nil
}
