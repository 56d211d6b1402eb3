package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"treecreator/internal/adapters/clipboard"
	"treecreator/internal/adapters/editor"
	"treecreator/internal/adapters/filesystem"
	"treecreator/internal/adapters/sqlite"
	"treecreator/internal/adapters/tui"
	"treecreator/internal/adapters/tui/views"
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
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", store.Path(), err)
			os.Exit(1)
		}
	} else {
		project = domain.NewProject(*nameFlag)
	}

	// The index is optional: the browser works without it, search falls
	// back to scanning the tree
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

	ctx := &views.Context{
		Project: project,
		Store:   store,
		Index:   index,
		Clip:    clipboard.NewSystem(),
	}

	app := tui.NewApp(ctx, editor.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
