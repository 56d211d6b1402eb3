package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show project statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		statsCmd := commands.NewStatsCommand(project)
		st, err := statsCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(commands.FormatStats(project.Meta.Name, st))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the tree for structural problems",
	Long: `Check the project tree for structural problems: orphaned nodes,
dangling child references, and parent cycles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		valCmd := commands.NewValidateTreeCommand(project)
		issues, err := valCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if len(issues) == 0 {
			fmt.Println("Tree is structurally sound.")
			return nil
		}
		for _, issue := range issues {
			fmt.Println(issue)
		}
		return fmt.Errorf("%d structural problems found", len(issues))
	},
}

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List available backup files, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		backups, err := store.Backups()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("No backups.")
			return nil
		}
		for _, b := range backups {
			fmt.Println(b)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(backupsCmd)
}
