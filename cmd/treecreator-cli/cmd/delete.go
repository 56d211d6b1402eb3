package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var deleteRecursive bool

var deleteCmd = &cobra.Command{
	Use:   "delete <node-id>",
	Short: "Delete a node",
	Long: `Delete a node from the tree. Folders that still have children are
only deleted with --recursive.

Examples:
  treecreator-cli delete <node-id>
  treecreator-cli delete <folder-id> --recursive`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delCmd := commands.NewDeleteNodeCommand(project, args[0], deleteRecursive)
		result, err := delCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if err := saveProject(); err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteRecursive, "recursive", "r", false, "delete a folder together with its subtree")
	rootCmd.AddCommand(deleteCmd)
}
