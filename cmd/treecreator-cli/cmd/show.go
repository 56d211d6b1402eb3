package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"treecreator/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <node-id>",
	Short: "Show a node's full detail",
	Long: `Show a node's path, kind, status, tags, and editor fields.

Example:
  treecreator-cli show <node-id>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := project.Registry.Find(args[0])
		if n == nil {
			return fmt.Errorf("node %s does not exist", args[0])
		}

		fmt.Printf("ID:     %s\n", n.ID)
		fmt.Printf("Path:   %s\n", project.Registry.Path(n.ID))
		fmt.Printf("Kind:   %s\n", n.Kind)
		status := n.Status
		if status == "" {
			status = domain.StatusNone
		}
		fmt.Printf("Status: %s\n", status)
		if len(n.Tags) > 0 {
			fmt.Printf("Tags:   %s\n", strings.Join(n.Tags, ", "))
		}
		printField("Summary", n.Fields.MarkdownShort)
		printField("Explanation", n.Fields.Explanation)
		printField("Code", n.Fields.Code)
		if len(n.Meta.Comments) > 0 {
			fmt.Printf("\nComments:\n")
			for _, c := range n.Meta.Comments {
				author := c.Author
				if author == "" {
					author = "anonymous"
				}
				fmt.Printf("  [%s] %s: %s\n", c.Timestamp.Format("2006-01-02 15:04"), author, c.Text)
			}
		}
		return nil
	},
}

func printField(label, content string) {
	if content == "" {
		return
	}
	fmt.Printf("\n%s:\n%s\n", label, content)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
