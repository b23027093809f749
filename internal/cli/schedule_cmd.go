package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/linework/internal/cli/formatter"
	"github.com/alexanderramin/linework/internal/importer"
	"github.com/alexanderramin/linework/internal/scheduler"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var (
		planPath    string
		rate        float64
		placeholder string
		sentinel    int
		now         time.Time
		save        bool
		asJSON      bool
	)

	defaults := scheduler.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Build the crew schedule from a plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := importer.LoadPlanFile(planPath)
			if err != nil {
				return err
			}
			if errs := importer.ValidatePlanFile(plan); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", e)
				}
				return fmt.Errorf("plan file failed validation with %d error(s)", len(errs))
			}

			cfg := scheduler.Config{
				Rate:                rate,
				PlaceholderResource: placeholder,
				PlacementSentinel:   sentinel,
			}

			req := importer.ConvertPlanFile(plan)
			req.Persist = save
			if cmd.Flags().Changed("now") {
				req.Now = &now
			}

			resp, err := app.Schedule.BuildSchedule(cmd.Context(), cfg, req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&planPath, "file", "f", "", "Plan JSON file (required)")
	cmd.Flags().Float64Var(&rate, "rate", defaults.Rate, "Work units one resource completes per day")
	cmd.Flags().StringVar(&placeholder, "placeholder-resource", defaults.PlaceholderResource, "Resource name substituted for unassigned work")
	cmd.Flags().IntVar(&sentinel, "placement-sentinel", defaults.PlacementSentinel, "Placement assumed for unplaced work")
	cmd.Flags().Var(newDateValue(&now), "now", "Scheduling origin date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the run to the local database")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw response as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
