package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"treecreator/internal/adapters/filesystem"
	mcpadapter "treecreator/internal/adapters/mcp"
	"treecreator/internal/adapters/sqlite"
	"treecreator/internal/config"
	"treecreator/internal/domain"
	"treecreator/internal/ports"
)

func main() {
	projectFlag := flag.String("project", config.ProjectPath(), "path to the project file")
	nameFlag := flag.String("name", "New Project", "project name when creating a new file")
	flag.Parse()

	store := filesystem.NewStore(*projectFlag)

	var project *domain.Project
	if store.Exists() {
		var err error
		project, err = store.Load()
		if err != nil {
			log.Fatalf("treecreator-mcp: loading %s: %v", store.Path(), err)
		}
	} else {
		project = domain.NewProject(*nameFlag)
		if err := store.Save(project); err != nil {
			log.Fatalf("treecreator-mcp: creating %s: %v", store.Path(), err)
		}
	}

	var index ports.ProjectIndex
	idx := sqlite.NewIndex()
	if err := idx.Open(store.Path()); err == nil {
		if err := idx.Rebuild(project.Registry); err == nil {
			index = idx
			defer idx.Close()
		} else {
			idx.Close()
		}
	}

	ws := mcpadapter.NewWorkspace(project, store, index)

	mcpServer := server.NewMCPServer(
		"treecreator-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, ws)
	mcpadapter.RegisterWriteTools(mcpServer, ws)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("treecreator-mcp: %v", err)
	}
}
