// Package config loads navigation configs and resolves them into the
// settings and per-tree options the nav pipeline runs with.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/agentic-research/navtree/api"
	"github.com/agentic-research/navtree/internal/nav"
)

var (
	ErrNoTrees     = errors.New("config declares no trees")
	ErrUnsupported = errors.New("unsupported config format")
)

var validate = validator.New()

// Load reads a config file. The format follows the extension:
// .hcl (tree "name" {} blocks), .json, .yaml or .yml.
func Load(path string) (*api.Navigation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes src, using filename only to pick the format and for
// diagnostics, then validates the result.
func Parse(filename string, src []byte) (*api.Navigation, error) {
	var n api.Navigation
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		if err := hclsimple.Decode(filename, src, nil, &n); err != nil {
			return nil, fmt.Errorf("decode hcl config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(src, &n); err != nil {
			return nil, fmt.Errorf("decode json config %s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(src, &n); err != nil {
			return nil, fmt.Errorf("decode yaml config %s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filename)
	}

	if err := Validate(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Validate checks tree names: present, unique and free of "/".
func Validate(n *api.Navigation) error {
	if len(n.Trees) == 0 {
		return ErrNoTrees
	}
	if err := validate.Struct(n); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	seen := make(map[string]bool, len(n.Trees))
	for _, t := range n.Trees {
		if seen[t.Name] {
			return fmt.Errorf("invalid config: duplicate tree %q", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

// Resolve applies defaults to n.
func Resolve(n *api.Navigation) (nav.Settings, []nav.TreeConfig) {
	settings := nav.DefaultSettings()
	if n.NavListProperty != nil {
		settings.NavListProperty = *n.NavListProperty
	}
	settings.Permalinks = n.Permalinks

	trees := make([]nav.TreeConfig, 0, len(n.Trees))
	for _, t := range n.Trees {
		cfg := nav.DefaultTreeConfig(t.Name)
		if t.SortBy != "" {
			cfg.SortBy = nav.ByField(t.SortBy)
		}
		setBool(&cfg.SortByNameFirst, t.SortByNameFirst)
		cfg.FilterProperty = t.FilterProperty
		cfg.FilterValue = t.FilterValue
		setString(&cfg.BreadcrumbProperty, t.BreadcrumbProperty)
		setString(&cfg.PathProperty, t.PathProperty)
		setString(&cfg.ChildrenProperty, t.ChildrenProperty)
		setBool(&cfg.MergeMatchingFilesAndDirs, t.MergeMatchingFilesAndDirs)
		setBool(&cfg.IncludeDirs, t.IncludeDirs)
		trees = append(trees, cfg)
	}
	return settings, trees
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
