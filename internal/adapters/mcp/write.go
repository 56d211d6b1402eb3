package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"treecreator/internal/application/commands"
	"treecreator/internal/domain"
)

// RegisterWriteTools adds all mutating project tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, ws *Workspace) {
	s.AddTool(createTool(), createHandler(ws))
	s.AddTool(renameTool(), renameHandler(ws))
	s.AddTool(moveTool(), moveHandler(ws))
	s.AddTool(duplicateTool(), duplicateHandler(ws))
	s.AddTool(deleteTool(), deleteHandler(ws))
	s.AddTool(setStatusTool(), setStatusHandler(ws))
	s.AddTool(editFieldTool(), editFieldHandler(ws))
	s.AddTool(undoTool(), undoHandler(ws))
	s.AddTool(redoTool(), redoHandler(ws))
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a new node. Name conflicts among siblings get a numbered suffix."),
		mcp.WithString("name",
			mcp.Description("Name for the new node"),
			mcp.Required(),
		),
		mcp.WithString("kind",
			mcp.Description("Node kind: file or folder. Defaults to file."),
		),
		mcp.WithString("parent_id",
			mcp.Description("Parent folder ID. Omit to create under the root."),
		),
		mcp.WithString("template",
			mcp.Description("Pre-fill fields from a template: readme, config, script or documentation"),
		),
	)
}

func createHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		kind := domain.ParseKind(req.GetString("kind", "file"))
		parentID := req.GetString("parent_id", "")

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewCreateNodeCommand(ws.project, name, kind, parentID)
		if tpl := req.GetString("template", ""); tpl != "" {
			cmd.WithTemplate(tpl)
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := ws.persist(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (id %s)", result.Message, result.NodeID)), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename a node. The root cannot be renamed through its reserved ID."),
		mcp.WithString("node_id",
			mcp.Description("Node ID to rename"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New node name"),
			mcp.Required(),
		),
	)
}

func renameHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeID := req.GetString("node_id", "")
		newName := req.GetString("new_name", "")

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewRenameNodeCommand(ws.project, nodeID, newName)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := ws.persist(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move a node under a different folder. A node cannot move into its own subtree."),
		mcp.WithString("node_id",
			mcp.Description("Node ID to move"),
			mcp.Required(),
		),
		mcp.WithString("new_parent_id",
			mcp.Description("Destination folder ID"),
			mcp.Required(),
		),
	)
}

func moveHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeID := req.GetString("node_id", "")
		newParentID := req.GetString("new_parent_id", "")

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewMoveNodeCommand(ws.project, nodeID, newParentID)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := ws.persist(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- duplicate ---

func duplicateTool() mcp.Tool {
	return mcp.NewTool("duplicate",
		mcp.WithDescription("Duplicate a node and its whole subtree. The copy gets fresh IDs and a conflict-free name."),
		mcp.WithString("node_id",
			mcp.Description("Node ID to duplicate"),
			mcp.Required(),
		),
		mcp.WithString("target_parent_id",
			mcp.Description("Folder to place the copy under. Omit to duplicate next to the original."),
		),
		mcp.WithString("new_name",
			mcp.Description("Name for the copy. Omit for an automatic suffix."),
		),
	)
}

func duplicateHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeID := req.GetString("node_id", "")
		targetParentID := req.GetString("target_parent_id", "")
		newName := req.GetString("new_name", "")

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewDuplicateBranchCommand(ws.project, nodeID, targetParentID, newName)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := ws.persist(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a node. Folders with children require recursive deletion."),
		mcp.WithString("node_id",
			mcp.Description("Node ID to delete"),
			mcp.Required(),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Delete a folder together with its whole subtree"),
		),
	)
}

func deleteHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeID := req.GetString("node_id", "")
		recursive := req.GetBool("recursive", false)

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewDeleteNodeCommand(ws.project, nodeID, recursive)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := ws.persist(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_status ---

func setStatusTool() mcp.Tool {
	return mcp.NewTool("set_status",
		mcp.WithDescription("Set a node's workflow status."),
		mcp.WithString("node_id",
			mcp.Description("Node ID to update"),
			mcp.Required(),
		),
		mcp.WithString("status",
			mcp.Description("One of: pending, in_progress, completed, none"),
			mcp.Required(),
		),
	)
}

func setStatusHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeID := req.GetString("node_id", "")
		status := req.GetString("status", "")

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewSetStatusCommand(ws.project, nodeID, status)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := ws.persist(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- edit_field ---

func editFieldTool() mcp.Tool {
	return mcp.NewTool("edit_field",
		mcp.WithDescription("Replace one of a node's editor fields."),
		mcp.WithString("node_id",
			mcp.Description("Node ID to edit"),
			mcp.Required(),
		),
		mcp.WithString("field",
			mcp.Description("One of: name, markdown_short, explanation, code"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("New field content"),
		),
	)
}

func editFieldHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeID := req.GetString("node_id", "")
		field := req.GetString("field", "")
		content := req.GetString("content", "")

		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewEditFieldCommand(ws.project, nodeID, field, content)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := ws.persist(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- undo / redo ---

func undoTool() mcp.Tool {
	return mcp.NewTool("undo",
		mcp.WithDescription("Undo the most recent change to the tree."),
	)
}

func undoHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewUndoCommand(ws.project)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := ws.persist(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func redoTool() mcp.Tool {
	return mcp.NewTool("redo",
		mcp.WithDescription("Reapply the most recently undone change."),
	)
}

func redoHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewRedoCommand(ws.project)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := ws.persist(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
