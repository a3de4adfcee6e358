package nav

import (
	"bytes"
	"encoding/json"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_MergedAboutPage(t *testing.T) {
	files := NewRecords()
	files.Add("about/team", Record{})
	files.Add("about.html", Record{"title": "About"})

	cfg := DefaultTreeConfig("main")
	tree := NewBuilder(cfg, DefaultSettings()).Build(files)

	require.Len(t, tree.Roots, 1)
	about := tree.Roots[0]
	assert.Equal(t, "About", about.Record["title"])
	assert.Equal(t, []string{"team"}, names(about.Children))
	assert.Equal(t, about, about.Children[0].Parent)
}

func TestBuilder_BoundLeavesMatchRecords(t *testing.T) {
	files := recordsOf("a", "a/b", "a/c", "d", "d/e/f")
	cfg := DefaultTreeConfig("main")
	cfg.MergeMatchingFilesAndDirs = false

	tree := NewBuilder(cfg, DefaultSettings()).Build(files)

	bound := 0
	for _, n := range allNodes(tree.Roots) {
		if n.Record != nil {
			bound++
		}
	}
	assert.Equal(t, files.Len(), bound)
	assert.Empty(t, tree.Coverage.Unreached())
}

func TestBuilder_FilterDefaultsToTreeName(t *testing.T) {
	files := NewRecords()
	files.Add("index.html", Record{"nav": []any{"header", "footer"}})
	files.Add("terms.html", Record{"nav": "footer"})
	files.Add("blog.html", Record{"nav": "header"})

	cfg := DefaultTreeConfig("footer")
	cfg.FilterProperty = "nav"
	tree := NewBuilder(cfg, DefaultSettings()).Build(files)

	assert.Equal(t, []string{"index.html", "terms.html"}, paths(tree.Roots))

	cfg.FilterValue = "header"
	tree = NewBuilder(cfg, DefaultSettings()).Build(files)
	assert.Equal(t, []string{"blog.html", "index.html"}, paths(tree.Roots))
}

func TestBuilder_UserSortAfterPathSort(t *testing.T) {
	files := NewRecords()
	files.Add("c.md", Record{"order": 1})
	files.Add("b.md", Record{"order": 2})
	files.Add("a.md", Record{"order": 1})

	cfg := DefaultTreeConfig("main")
	cfg.SortBy = ByField("order")
	tree := NewBuilder(cfg, DefaultSettings()).Build(files)
	assert.Equal(t, []string{"a.md", "c.md", "b.md"}, paths(tree.Roots))

	cfg.SortByNameFirst = false
	tree = NewBuilder(cfg, DefaultSettings()).Build(files)
	assert.Equal(t, []string{"c.md", "a.md", "b.md"}, paths(tree.Roots))
}

func TestBuilder_KeepsDirsByDefault(t *testing.T) {
	files := recordsOf("index.md", "blog/post-1.md", "blog/post-2.md")
	cfg := DefaultTreeConfig("main")

	tree := NewBuilder(cfg, DefaultSettings()).Build(files)
	assert.Equal(t, []string{"blog", "index.md"}, paths(tree.Roots))
	assert.Equal(t, []string{"blog/post-1.md", "blog/post-2.md"}, paths(tree.Roots[0].Children))
	assert.Empty(t, tree.Coverage.Unreached())

	cfg.IncludeDirs = false
	tree = NewBuilder(cfg, DefaultSettings()).Build(files)
	assert.Equal(t, []string{"index.md"}, paths(tree.Roots))
	assert.Equal(t, []string{"blog/post-1.md", "blog/post-2.md"}, tree.Coverage.Unreached())
}

func TestBuilder_Permalinks(t *testing.T) {
	files := recordsOf("index.html", "contact/index.html", "blog/index.html", "blog/first/index.html")
	settings := DefaultSettings()
	settings.Permalinks = true

	tree := NewBuilder(DefaultTreeConfig("main"), settings).Build(files)

	// collapsed parents become leaves, so pruning keeps them
	assert.Equal(t, []string{"blog", "contact", "index.html"}, paths(tree.Roots))
	for _, n := range tree.Roots[:2] {
		assert.True(t, n.AddTrailingSlash, n.Path)
	}
	blog := tree.Roots[0]
	assert.Equal(t, "blog/index.html", blog.RecordKey)
	assert.Equal(t, []string{"blog/first"}, paths(blog.Children))
}

func TestRunner_Run(t *testing.T) {
	files := NewRecords()
	files.Add(`docs\guide.md`, Record{"menu": []any{"side"}, "w": 2})
	files.Add("docs.md", Record{"menu": []any{"side", "top"}, "w": 1})
	files.Add("home.md", Record{"menu": "top"})

	side := DefaultTreeConfig("side")
	side.FilterProperty = "menu"
	side.SortBy = ByField("w")
	top := DefaultTreeConfig("top")
	top.FilterProperty = "menu"
	top.BreadcrumbProperty = ""

	var logs bytes.Buffer
	runner := NewRunner(DefaultSettings(), []TreeConfig{side, top})
	runner.Logger = log.New(&logs, "", 0)

	metadata := map[string]any{}
	res := runner.Run(files, metadata)

	assert.Equal(t, []string{"side", "top"}, res.Names)
	navs, ok := metadata["navs"].(map[string][]*Node)
	require.True(t, ok)
	assert.Len(t, navs, 2)

	sideRoots, ok := res.Tree("side")
	require.True(t, ok)
	require.Len(t, sideRoots, 1)
	assert.Equal(t, "docs.md", sideRoots[0].Path)
	assert.Equal(t, []string{"docs/guide.md"}, paths(sideRoots[0].Children))

	// one record, one children list per tree
	docs, _ := files.Get("docs.md")
	byTree := docs["nav_children"].(map[string][]*Node)
	assert.Len(t, byTree["side"], 1)
	assert.Contains(t, byTree, "top")

	guide, ok := files.Get("docs/guide.md")
	require.True(t, ok)
	assert.Equal(t, "docs/guide.md", guide["nav_path"])
	assert.Len(t, guide["breadcrumb_path"], 1)

	assert.Empty(t, logs.String())
}

func TestRunner_WarnsUnreached(t *testing.T) {
	files := recordsOf("index.md", "docs/a.md")
	cfg := DefaultTreeConfig("main")
	cfg.IncludeDirs = false
	var logs bytes.Buffer
	runner := NewRunner(DefaultSettings(), []TreeConfig{cfg})
	runner.Logger = log.New(&logs, "", 0)

	res := runner.Run(files, nil)

	assert.Contains(t, logs.String(), `nav "main": record docs/a.md matched but is not in the tree`)
	assert.Equal(t, uint64(2), res.Coverage["main"].Matched.GetCardinality())
	assert.Equal(t, uint64(1), res.Coverage["main"].Bound.GetCardinality())
}

func TestRunner_NoNavListProperty(t *testing.T) {
	settings := DefaultSettings()
	settings.NavListProperty = ""
	metadata := map[string]any{}
	res := NewRunner(settings, []TreeConfig{DefaultTreeConfig("main")}).Run(recordsOf("a"), metadata)

	assert.Empty(t, metadata)
	assert.Len(t, res.Trees["main"], 1)
}

func TestNode_MarshalJSON(t *testing.T) {
	files := recordsOf("a", "a/b")
	tree := NewBuilder(DefaultTreeConfig("main"), DefaultSettings()).Build(files)

	data, err := json.Marshal(tree.Roots)
	require.NoError(t, err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0]["path"])
	assert.Equal(t, "leaf", out[0]["kind"])
	children := out[0]["children"].([]any)
	child := children[0].(map[string]any)
	assert.Equal(t, []any{"a"}, child["breadcrumb"])
	assert.Equal(t, "a/b", child["record"])
}

func TestRecords_NormalizeSeparatorsCollision(t *testing.T) {
	files := NewRecords()
	files.Add(`a\b`, Record{"v": "backslash"})
	files.Add("x", Record{})
	files.Add("a/b", Record{"v": "slash"})

	files.NormalizeSeparators()

	// first position, later record
	assert.Equal(t, []string{"a/b", "x"}, files.Paths())
	assert.Equal(t, 2, files.Len())
	rec, ok := files.Get("a/b")
	require.True(t, ok)
	assert.Equal(t, "slash", rec["v"])
	i, ok := files.Index("x")
	require.True(t, ok)
	assert.Equal(t, uint32(1), i)
}

func TestRecords_NormalizeSeparators(t *testing.T) {
	files := NewRecords()
	files.Add("first", Record{})
	files.Add(`a\b`, Record{"v": 1})
	files.Add("last", Record{})

	files.NormalizeSeparators()

	assert.Equal(t, []string{"first", "a/b", "last"}, files.Paths())
	rec, ok := files.Get("a/b")
	require.True(t, ok)
	assert.Equal(t, 1, rec["v"])
	i, ok := files.Index("last")
	require.True(t, ok)
	assert.Equal(t, uint32(2), i)
}
