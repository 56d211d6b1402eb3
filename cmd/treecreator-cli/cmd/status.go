package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treecreator/internal/application/commands"
)

var statusCycle bool

var statusCmd = &cobra.Command{
	Use:   "status <node-id> [value]",
	Short: "Set or cycle a node's status",
	Long: `Set a node's workflow status, or advance it to the next one.

Valid statuses: pending, in_progress, completed, none.

Examples:
  treecreator-cli status <node-id> completed
  treecreator-cli status <node-id> --cycle`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if statusCycle {
			cycleCmd := commands.NewCycleStatusCommand(project, args[0])
			result, err := cycleCmd.Execute(ctx)
			if err != nil {
				return err
			}
			if err := saveProject(); err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		}

		if len(args) < 2 {
			return fmt.Errorf("a status value is required (or use --cycle)")
		}

		setCmd := commands.NewSetStatusCommand(project, args[0], args[1])
		result, err := setCmd.Execute(ctx)
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
	statusCmd.Flags().BoolVar(&statusCycle, "cycle", false, "advance to the next status instead of setting one")
	rootCmd.AddCommand(statusCmd)
}
