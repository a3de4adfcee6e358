package nav

import (
	"slices"
	"strings"
)

// MergeFileDirs folds a branch into its leaf sibling when the leaf's path
// minus its extension equals the branch path (about + about.html). The
// branch's children move onto the leaf, skipping ones already there, and the
// branch is dropped. Applied recursively to the surviving children.
func MergeFileDirs(tree *[]*Node) {
	mergeSiblings(tree)
}

func mergeSiblings(siblings *[]*Node) {
	for i := len(*siblings) - 1; i >= 0; i-- {
		dir := (*siblings)[i]
		if dir.Kind != KindBranch {
			continue
		}
		for j := len(*siblings) - 1; j >= 0; j-- {
			file := (*siblings)[j]
			if file == dir || file.Kind == KindBranch {
				continue
			}
			if trimExt(file.Path) != dir.Path {
				continue
			}
			for _, child := range dir.Children {
				if !slices.Contains(file.Children, child) {
					file.Children = append(file.Children, child)
				}
			}
			*siblings = removeAt(*siblings, i)
			break
		}
	}

	for _, n := range *siblings {
		mergeSiblings(&n.Children)
	}
}

// trimExt strips one trailing ".ext" from the last path segment.
// Dotfiles and extensionless names are returned unchanged.
func trimExt(p string) string {
	base := p
	if i := strings.LastIndex(p, "/"); i >= 0 {
		base = p[i+1:]
	}
	dot := strings.LastIndex(base, ".")
	if dot <= 0 || dot == len(base)-1 {
		return p
	}
	return p[:len(p)-len(base)+dot]
}
