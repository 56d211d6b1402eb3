package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/adapters/sqlite"
	"treecreator/internal/application/commands"
	"treecreator/internal/ports"
)

var searchNoIndex bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search nodes by name, path, and content",
	Long: `Search node names, paths, and editor field content. Results are
ranked by match quality.

By default a SQLite index next to the project file supplies the
candidates; --no-index scans the in-memory tree instead.

Example:
  treecreator-cli search "chapter"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var index ports.ProjectIndex
		if !searchNoIndex {
			idx := sqlite.NewIndex()
			if err := idx.Open(store.Path()); err != nil {
				return err
			}
			defer idx.Close()
			if err := idx.Rebuild(project.Registry); err != nil {
				return err
			}
			index = idx
		}

		searchCmd := commands.NewSearchCommand(project, index, args[0])
		results, err := searchCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s  %s  %s\n", r.NodeID, r.Path, r.Snippet)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchNoIndex, "no-index", false, "scan the tree directly instead of the SQLite index")
	rootCmd.AddCommand(searchCmd)
}
