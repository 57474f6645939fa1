package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/commands/options"
	"tableflip.dev/advcontrol/pkg/runner/sync"
	"tableflip.dev/advcontrol/pkg/screens"
)

func addSync(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reload every collection and refresh the local cache.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withScreens(cmd, func(_ *app.App, set *screens.Set) error {
				r := sync.Sync{Screens: set, JSON: oo.JSON, Out: cmd.OutOrStdout()}
				return r.Do(cmd.Context())
			})
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
