package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/runner/ui"
	"tableflip.dev/advcontrol/pkg/screens"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the terminal dashboard",
		Example: `
advcontrol ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withScreens(cmd, func(a *app.App, set *screens.Set) error {
				i := ui.UI{App: a, Screens: set}
				return i.Do(cmd.Context())
			})
		},
	}

	topLevel.AddCommand(cmd)
}
