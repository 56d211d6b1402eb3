package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var commentAuthor string

var commentCmd = &cobra.Command{
	Use:   "comment <node-id> <text>",
	Short: "Attach a comment to a node",
	Long: `Attach a dated comment to a node. Comments show up in the
node detail (see the show command).

Example:
  treecreator-cli comment <node-id> "needs a second pass" --author ana`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentCmd := commands.NewAddCommentCommand(project, args[0], args[1], commentAuthor)
		result, err := commentCmd.Execute(context.Background())
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
	commentCmd.Flags().StringVar(&commentAuthor, "author", "", "comment author name")
	rootCmd.AddCommand(commentCmd)
}
