package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var (
	duplicateInto string
	duplicateName string
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <node-id>",
	Short: "Duplicate a node and its subtree",
	Long: `Duplicate a node together with its whole subtree. The copy gets
fresh IDs and a conflict-free name.

Examples:
  treecreator-cli duplicate <node-id>
  treecreator-cli duplicate <node-id> --into <folder-id> --name "part-two"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dupCmd := commands.NewDuplicateBranchCommand(project, args[0], duplicateInto, duplicateName)
		result, err := dupCmd.Execute(context.Background())
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
	duplicateCmd.Flags().StringVar(&duplicateInto, "into", "", "target folder ID (defaults to the original's parent)")
	duplicateCmd.Flags().StringVar(&duplicateName, "name", "", "name for the copy (defaults to an automatic suffix)")
	rootCmd.AddCommand(duplicateCmd)
}
