// Package mcpserver exposes built navigation trees as MCP tools.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agentic-research/navtree/internal/nav"
	"github.com/agentic-research/navtree/internal/render"
)

// Handler answers tool calls against one build result.
type Handler struct {
	res *nav.Result
}

func NewHandler(res *nav.Result) *Handler {
	return &Handler{res: res}
}

// New returns an MCP server with the list_trees, get_tree and
// get_breadcrumb tools registered.
func New(res *nav.Result, version string) *server.MCPServer {
	h := NewHandler(res)
	s := server.NewMCPServer("navtree", version, server.WithToolCapabilities(false))

	s.AddTool(mcp.NewTool("list_trees",
		mcp.WithDescription("List the navigation trees built from the records, in configuration order."),
	), h.ListTrees)

	s.AddTool(mcp.NewTool("get_tree",
		mcp.WithDescription("Return one navigation tree, drawn as text or as JSON."),
		mcp.WithString("tree", mcp.Required(), mcp.Description("Tree name")),
		mcp.WithString("format", mcp.Description("text (default) or json")),
	), h.GetTree)

	s.AddTool(mcp.NewTool("get_breadcrumb",
		mcp.WithDescription("Return the ancestor chain of a node, root first."),
		mcp.WithString("tree", mcp.Required(), mcp.Description("Tree name")),
		mcp.WithString("path", mcp.Required(), mcp.Description("Node path, e.g. docs/intro.md")),
	), h.GetBreadcrumb)

	return s
}

// Serve runs the server over stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func (h *Handler) ListTrees(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, name := range h.res.Names {
		fmt.Fprintf(&b, "%s\t%d roots\n", name, len(h.res.Trees[name]))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (h *Handler) GetTree(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("tree")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	roots, ok := h.res.Tree(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown tree %q", name)), nil
	}

	switch format := req.GetString("format", "text"); format {
	case "json":
		data, err := json.MarshalIndent(roots, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode tree %s: %w", name, err)
		}
		return mcp.NewToolResultText(string(data)), nil
	case "text", "":
		var buf bytes.Buffer
		if err := render.Text(&buf, name, roots); err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(buf.String()), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", format)), nil
	}
}

func (h *Handler) GetBreadcrumb(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("tree")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	roots, ok := h.res.Tree(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown tree %q", name)), nil
	}
	node := find(roots, path)
	if node == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no node %q in tree %q", path, name)), nil
	}
	return mcp.NewToolResultText(strings.Join(append(node.BreadcrumbPaths(), node.Path), "\n")), nil
}

func find(nodes []*nav.Node, path string) *nav.Node {
	for _, n := range nodes {
		if n.Path == path {
			return n
		}
		if found := find(n.Children, path); found != nil {
			return found
		}
	}
	return nil
}
