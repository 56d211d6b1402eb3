package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var editFromFile string

var editCmd = &cobra.Command{
	Use:   "edit <node-id> <field>",
	Short: "Replace a node's editor field",
	Long: `Replace one of a node's editor fields. The new content is read from
--file, or from stdin when no file is given.

Fields: name, markdown_short, explanation, code.

Examples:
  treecreator-cli edit <node-id> explanation --file notes.md
  echo "TODO list" | treecreator-cli edit <node-id> markdown_short`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var content []byte
		var err error
		if editFromFile != "" {
			content, err = os.ReadFile(editFromFile)
			if err != nil {
				return fmt.Errorf("reading %s: %w", editFromFile, err)
			}
		} else {
			content, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
		}

		editCmd := commands.NewEditFieldCommand(project, args[0], args[1], string(content))
		result, err := editCmd.Execute(context.Background())
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
	editCmd.Flags().StringVar(&editFromFile, "file", "", "read the new content from a file instead of stdin")
	rootCmd.AddCommand(editCmd)
}
