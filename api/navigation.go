package api

// Navigation is the root of a navigation config file.
// Pointer fields distinguish "unset" (take the default) from an explicit
// empty value (disable the feature).
type Navigation struct {
	// NavListProperty is the metadata key the built trees are stored under.
	NavListProperty *string `json:"nav_list_property,omitempty" yaml:"nav_list_property,omitempty" hcl:"nav_list_property,optional"`
	// Permalinks collapses directory-style permalink leaves onto their parent.
	Permalinks bool `json:"permalinks,omitempty" yaml:"permalinks,omitempty" hcl:"permalinks,optional"`
	// Trees are built in declaration order.
	Trees []Tree `json:"trees" yaml:"trees" hcl:"tree,block" validate:"dive"`
}

// Tree configures one named navigation tree.
type Tree struct {
	Name string `json:"name" yaml:"name" hcl:"name,label" validate:"required,excludesall=/"`

	// SortBy is a record field name or a JSONPath starting with "$".
	SortBy          string `json:"sort_by,omitempty" yaml:"sort_by,omitempty" hcl:"sort_by,optional"`
	SortByNameFirst *bool  `json:"sort_by_name_first,omitempty" yaml:"sort_by_name_first,omitempty" hcl:"sort_by_name_first,optional"`

	FilterProperty string `json:"filter_property,omitempty" yaml:"filter_property,omitempty" hcl:"filter_property,optional"`
	FilterValue    string `json:"filter_value,omitempty" yaml:"filter_value,omitempty" hcl:"filter_value,optional"`

	BreadcrumbProperty *string `json:"breadcrumb_property,omitempty" yaml:"breadcrumb_property,omitempty" hcl:"breadcrumb_property,optional"`
	PathProperty       *string `json:"path_property,omitempty" yaml:"path_property,omitempty" hcl:"path_property,optional"`
	ChildrenProperty   *string `json:"children_property,omitempty" yaml:"children_property,omitempty" hcl:"children_property,optional"`

	MergeMatchingFilesAndDirs *bool `json:"merge_matching_files_and_dirs,omitempty" yaml:"merge_matching_files_and_dirs,omitempty" hcl:"merge_matching_files_and_dirs,optional"`
	IncludeDirs               *bool `json:"include_dirs,omitempty" yaml:"include_dirs,omitempty" hcl:"include_dirs,optional"`
}
