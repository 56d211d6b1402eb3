package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/adapters/filesystem"
	"treecreator/internal/domain"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new empty project",
	Long: `Create a new project file with a single root folder.

Example:
  treecreator-cli init "My Book" -p ./book.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := filesystem.NewStore(projectPath)
		if s.Exists() && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", s.Path())
		}

		p := domain.NewProject(args[0])
		if err := s.Save(p); err != nil {
			return err
		}

		fmt.Printf("Created project %q at %s\n", args[0], s.Path())
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing project file")
	rootCmd.AddCommand(initCmd)
}
