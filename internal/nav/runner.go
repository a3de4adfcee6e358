package nav

import (
	"log"
)

// Result holds every tree of one run, in configuration order.
type Result struct {
	Names    []string
	Trees    map[string][]*Node
	Coverage map[string]*Coverage
}

// Tree returns the roots of the named tree.
func (r *Result) Tree(name string) ([]*Node, bool) {
	t, ok := r.Trees[name]
	return t, ok
}

// Runner builds each configured tree in declaration order. Trees run one
// after another because later trees see record fields written by earlier ones.
type Runner struct {
	Settings Settings
	Trees    []TreeConfig
	Logger   *log.Logger // nil disables diagnostics
}

func NewRunner(settings Settings, trees []TreeConfig) *Runner {
	return &Runner{Settings: settings, Trees: trees}
}

// Run normalizes path separators in files, builds every tree and, when
// NavListProperty is set, stores the name->roots map in metadata.
func (r *Runner) Run(files *Records, metadata map[string]any) *Result {
	files.NormalizeSeparators()

	res := &Result{
		Trees:    make(map[string][]*Node, len(r.Trees)),
		Coverage: make(map[string]*Coverage, len(r.Trees)),
	}
	for _, cfg := range r.Trees {
		tree := NewBuilder(cfg, r.Settings).Build(files)
		if _, seen := res.Trees[cfg.Name]; !seen {
			res.Names = append(res.Names, cfg.Name)
		}
		res.Trees[cfg.Name] = tree.Roots
		res.Coverage[cfg.Name] = tree.Coverage
		r.warnUnreached(tree)
	}

	if r.Settings.NavListProperty != "" && metadata != nil {
		metadata[r.Settings.NavListProperty] = res.Trees
	}
	return res
}

func (r *Runner) warnUnreached(tree *Tree) {
	if r.Logger == nil {
		return
	}
	for _, p := range tree.Coverage.Unreached() {
		r.Logger.Printf("nav %q: record %s matched but is not in the tree", tree.Name, p)
	}
}
