package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treecreator/internal/adapters/filesystem"
	"treecreator/internal/config"
	"treecreator/internal/domain"
)

var (
	projectPath string
	store       *filesystem.Store
	project     *domain.Project
)

var rootCmd = &cobra.Command{
	Use:   "treecreator-cli",
	Short: "CLI for managing project tree files",
	Long: `treecreator-cli is a command-line interface for managing project trees
stored as JSON documents.

It provides commands to inspect, create, move, duplicate, delete, and
search nodes within a project tree. Every mutating command saves the
project back to disk.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip loading for commands that don't need an existing project
		switch cmd.Name() {
		case "help", "completion", "init":
			return nil
		}
		store = filesystem.NewStore(projectPath)
		var err error
		project, err = store.Load()
		if err != nil {
			return fmt.Errorf("loading %s: %w", store.Path(), err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", config.ProjectPath(), "path to the project file")
}

// saveProject writes the project back to disk after a mutation
func saveProject() error {
	if err := store.Save(project); err != nil {
		return fmt.Errorf("saving %s: %w", store.Path(), err)
	}
	return nil
}
