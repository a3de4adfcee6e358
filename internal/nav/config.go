package nav

// Settings apply to every tree of a run.
type Settings struct {
	// NavListProperty is the metadata key the name->tree map is stored
	// under. Empty skips the write.
	NavListProperty string
	// Permalinks enables CollapsePermalinks on every tree.
	Permalinks bool
}

// DefaultSettings returns the stock settings.
func DefaultSettings() Settings {
	return Settings{NavListProperty: "navs"}
}

// TreeConfig controls how one named tree is built.
type TreeConfig struct {
	Name string

	// SortBy is the user ranking, applied after the path sort. Nil skips it.
	SortBy          SortKey
	SortByNameFirst bool

	// FilterProperty scopes the tree to records whose field equals (or
	// contains) FilterValue. FilterValue defaults to Name.
	FilterProperty string
	FilterValue    string

	// Record properties written by the pipeline; empty disables each one.
	BreadcrumbProperty string
	PathProperty       string
	ChildrenProperty   string

	MergeMatchingFilesAndDirs bool
	// IncludeDirs keeps branch nodes. Turning it off runs RemoveDirs.
	IncludeDirs bool
}

// DefaultTreeConfig returns the stock configuration for a tree named name.
func DefaultTreeConfig(name string) TreeConfig {
	return TreeConfig{
		Name:                      name,
		SortByNameFirst:           true,
		BreadcrumbProperty:        "breadcrumb_path",
		PathProperty:              "nav_path",
		ChildrenProperty:          "nav_children",
		MergeMatchingFilesAndDirs: true,
		IncludeDirs:               true,
	}
}

func (c TreeConfig) filterValue() string {
	if c.FilterValue != "" {
		return c.FilterValue
	}
	return c.Name
}
