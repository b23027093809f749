package cli

import (
	"github.com/alexanderramin/linework/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Schedule service.ScheduleService
	Runs     service.RunService

	// IsInteractive reports whether stdout is a terminal; non-interactive
	// output drops color.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "linework" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "linework",
		Short: "Crew schedule engine for line construction work",
	}

	root.AddCommand(
		newScheduleCmd(app),
		newRunsCmd(app),
	)

	return root
}
