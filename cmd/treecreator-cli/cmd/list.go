package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [parent-id]",
	Short: "List a folder's direct children",
	Long: `List the direct children of a folder. Without an argument the root's
children are listed.

Examples:
  treecreator-cli list
  treecreator-cli list <folder-id>`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parentID := ""
		if len(args) == 1 {
			parentID = args[0]
		}

		listCmd := commands.NewListChildrenCommand(project, parentID)
		children, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(children) == 0 {
			fmt.Println("No children.")
			return nil
		}
		for _, child := range children {
			fmt.Printf("%s  %s\n", child.ID, child.DisplayName(true, true))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
