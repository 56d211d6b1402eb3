package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
	"treecreator/internal/domain"
)

var (
	createParent   string
	createFolder   bool
	createTemplate string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new file or folder node",
	Long: `Create a new node in the project tree.

Without --parent the node is created under the root. Sibling name
conflicts get a numbered suffix automatically.

Examples:
  treecreator-cli create "chapter-01.md" --parent <folder-id>
  treecreator-cli create "drafts" --folder
  treecreator-cli create "README.md" --template readme`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := domain.KindFile
		if createFolder {
			kind = domain.KindFolder
		}

		createCmd := commands.NewCreateNodeCommand(project, args[0], kind, createParent)
		if createTemplate != "" {
			createCmd.WithTemplate(createTemplate)
		}
		result, err := createCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if err := saveProject(); err != nil {
			return err
		}

		fmt.Printf("%s (id %s)\n", result.Message, result.NodeID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createParent, "parent", "", "parent folder ID (defaults to the root)")
	createCmd.Flags().BoolVar(&createFolder, "folder", false, "create a folder instead of a file")
	createCmd.Flags().StringVar(&createTemplate, "template", "", "pre-fill fields from a template (readme, config, script, documentation)")
	rootCmd.AddCommand(createCmd)
}
