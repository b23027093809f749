package cli

import (
	"fmt"

	"github.com/alexanderramin/linework/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRunsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved schedule runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Runs.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunList(runs))
			return nil
		},
	}
	cmd.PersistentFlags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")

	show := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one saved run with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.Runs.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunDetail(detail))
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Runs.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(show, del)
	return cmd
}
