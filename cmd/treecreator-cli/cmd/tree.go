package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var treeNoStatus bool

var treeCmd = &cobra.Command{
	Use:   "tree [node-id]",
	Short: "Display the project tree",
	Long: `Display the project as an indented outline. With a node ID only
that subtree is rendered.

Examples:
  treecreator-cli tree
  treecreator-cli tree <folder-id>`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rootID := ""
		if len(args) == 1 {
			rootID = args[0]
		}

		outlineCmd := commands.NewOutlineCommand(project, rootID, !treeNoStatus)
		lines, err := outlineCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(commands.RenderOutline(lines))
		return nil
	},
}

func init() {
	treeCmd.Flags().BoolVar(&treeNoStatus, "no-status", false, "hide status markers")
	rootCmd.AddCommand(treeCmd)
}
