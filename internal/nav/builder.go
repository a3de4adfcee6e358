// Package nav turns flat, path-keyed records into navigation trees and
// links the trees back onto the records.
package nav

// Tree is one built navigation hierarchy.
type Tree struct {
	Name     string
	Roots    []*Node
	Coverage *Coverage
}

// Builder runs the full pipeline for one tree configuration.
type Builder struct {
	Config   TreeConfig
	Settings Settings
}

func NewBuilder(cfg TreeConfig, settings Settings) *Builder {
	return &Builder{Config: cfg, Settings: settings}
}

// Build derives the tree from files. Bound records are mutated in place.
// files is expected to be separator-normalized already.
func (b *Builder) Build(files *Records) *Tree {
	cfg := b.Config

	scoped := files
	if cfg.FilterProperty != "" {
		scoped = FilterRecords(files, cfg.FilterProperty, cfg.filterValue())
	}

	paths := make([][]string, 0, scoped.Len())
	scoped.Each(func(p string, _ Record) {
		paths = append(paths, SplitPath(p))
	})

	nodes := PathsToTree(paths)
	Annotate(&nodes, files)

	if cfg.MergeMatchingFilesAndDirs {
		MergeFileDirs(&nodes)
	}
	if cfg.SortByNameFirst {
		nodes = SortNodes(nodes, ByPath())
	}
	if cfg.SortBy != nil {
		nodes = SortNodes(nodes, cfg.SortBy)
	}

	BindRecords(&nodes, files, cfg.PathProperty, cfg.ChildrenProperty, cfg.Name)
	SetBreadcrumbs(&nodes, cfg.BreadcrumbProperty)

	if b.Settings.Permalinks {
		CollapsePermalinks(&nodes)
	}
	if !cfg.IncludeDirs {
		RemoveDirs(&nodes)
	}

	cov := newCoverage(files, scoped)
	cov.collect(nodes)

	return &Tree{Name: cfg.Name, Roots: nodes, Coverage: cov}
}
