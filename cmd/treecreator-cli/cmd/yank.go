package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/adapters/clipboard"
	"treecreator/internal/application/commands"
)

var yankOutline bool

var yankCmd = &cobra.Command{
	Use:   "yank <node-id>",
	Short: "Copy a node's content to the system clipboard",
	Long: `Copy a node's markdown content to the system clipboard. With
--outline the node's subtree is copied as an indented outline instead.

Examples:
  treecreator-cli yank <node-id>
  treecreator-cli yank <folder-id> --outline`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node := project.Registry.Find(args[0])
		if node == nil {
			return fmt.Errorf("node %s does not exist", args[0])
		}

		var text string
		if yankOutline {
			outlineCmd := commands.NewOutlineCommand(project, node.ID, true)
			lines, err := outlineCmd.Execute(context.Background())
			if err != nil {
				return err
			}
			text = commands.RenderOutline(lines)
		} else {
			text = node.Fields.MarkdownShort
			if text == "" {
				text = node.Name
			}
		}

		if err := clipboard.NewSystem().WriteText(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Printf("Copied %s to clipboard\n", node.Name)
		return nil
	},
}

func init() {
	yankCmd.Flags().BoolVar(&yankOutline, "outline", false, "copy the subtree as an indented outline")
	rootCmd.AddCommand(yankCmd)
}
