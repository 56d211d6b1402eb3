package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var renameCmd = &cobra.Command{
	Use:   "rename <node-id> <new-name>",
	Short: "Rename a node",
	Long: `Rename a node. The root folder cannot be renamed this way.

Example:
  treecreator-cli rename <node-id> "chapter-02.md"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		renameCmd := commands.NewRenameNodeCommand(project, args[0], args[1])
		result, err := renameCmd.Execute(context.Background())
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
	rootCmd.AddCommand(renameCmd)
}
