package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"treecreator/internal/application/commands"
	"treecreator/internal/domain"
)

// RegisterReadTools adds all read-only project tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, ws *Workspace) {
	s.AddTool(treeTool(), treeHandler(ws))
	s.AddTool(listTool(), listHandler(ws))
	s.AddTool(readNodeTool(), readNodeHandler(ws))
	s.AddTool(searchTool(), searchHandler(ws))
	s.AddTool(statsTool(), statsHandler(ws))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the project structure as an indented outline with status markers."),
		mcp.WithString("node_id",
			mcp.Description("Node ID to use as the outline root. Omit to render the whole tree."),
		),
	)
}

func treeHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeID := req.GetString("node_id", "")

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewOutlineCommand(ws.project, nodeID, true)
		lines, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(commands.RenderOutline(lines)), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the direct children of a folder. Without arguments lists the root's children."),
		mcp.WithString("parent_id",
			mcp.Description("Folder node ID to list children of. Omit for the root."),
		),
	)
}

func listHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parentID := req.GetString("parent_id", "")

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewListChildrenCommand(ws.project, parentID)
		children, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(children) == 0 {
			return mcp.NewToolResultText("No children."), nil
		}

		var sb strings.Builder
		for _, child := range children {
			fmt.Fprintf(&sb, "%s  %s\n", child.ID, child.DisplayName(true, true))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_node ---

func readNodeTool() mcp.Tool {
	return mcp.NewTool("read_node",
		mcp.WithDescription("Read a node's full detail: path, kind, status, tags, and all editor fields."),
		mcp.WithString("node_id",
			mcp.Description("Node ID to read"),
			mcp.Required(),
		),
	)
}

func readNodeHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeID := req.GetString("node_id", "")
		if nodeID == "" {
			return toolError(fmt.Errorf("node_id is required"))
		}

		ws.mu.Lock()
		defer ws.mu.Unlock()

		n := ws.project.Registry.Find(nodeID)
		if n == nil {
			return toolError(fmt.Errorf("node %s does not exist", nodeID))
		}
		return mcp.NewToolResultText(formatNode(ws.project.Registry, n)), nil
	}
}

func formatNode(r *domain.Registry, n *domain.Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID:     %s\n", n.ID)
	fmt.Fprintf(&sb, "Path:   %s\n", r.Path(n.ID))
	fmt.Fprintf(&sb, "Kind:   %s\n", n.Kind)
	fmt.Fprintf(&sb, "Status: %s\n", statusLabel(n.Status))
	if len(n.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags:   %s\n", strings.Join(n.Tags, ", "))
	}
	writeField(&sb, "Summary", n.Fields.MarkdownShort)
	writeField(&sb, "Explanation", n.Fields.Explanation)
	writeField(&sb, "Code", n.Fields.Code)
	return sb.String()
}

func writeField(sb *strings.Builder, label, content string) {
	if content == "" {
		return
	}
	fmt.Fprintf(sb, "\n%s:\n%s\n", label, content)
}

func statusLabel(s domain.Status) string {
	if s == "" {
		return string(domain.StatusNone)
	}
	return string(s)
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search node names, paths, and content by keyword. Returns matching nodes with their IDs."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
	)
}

func searchHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewSearchCommand(ws.project, ws.index, query)
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s\n", r.NodeID, r.Path, r.Snippet)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Show project statistics: node counts by kind and by status."),
	)
}

func statsHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewStatsCommand(ws.project)
		st, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(commands.FormatStats(ws.project.Meta.Name, st)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
