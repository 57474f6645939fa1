package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/commands/options"
	"tableflip.dev/advcontrol/pkg/runner/dashboard"
	"tableflip.dev/advcontrol/pkg/screens"
)

func addDashboard(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's counters and alerts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withScreens(cmd, func(_ *app.App, set *screens.Set) error {
				r := dashboard.Dashboard{Screens: set, JSON: oo.JSON, Out: cmd.OutOrStdout()}
				return r.Do(cmd.Context())
			})
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
