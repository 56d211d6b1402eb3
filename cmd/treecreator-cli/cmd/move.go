package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <node-id> <dest-folder-id>",
	Short: "Move a node to another folder",
	Long: `Move a node (and its subtree) under a different folder.

Rules:
- The destination must be an existing folder
- A node cannot be moved into its own subtree
- The root folder cannot be moved

Example:
  treecreator-cli move <node-id> <folder-id>`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		moveCmd := commands.NewMoveNodeCommand(project, args[0], args[1])
		result, err := moveCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if err := saveProject(); err != nil {
			return err
		}
		fmt.Printf("%s (now at %s)\n", result.Message, result.NewPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
