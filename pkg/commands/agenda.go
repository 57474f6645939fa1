package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/commands/options"
	"tableflip.dev/advcontrol/pkg/runner/agenda"
	"tableflip.dev/advcontrol/pkg/screens"
)

func addAgenda(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	wo := &options.WindowOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "agenda",
		Aliases: []string{"prazos", "calendar"},
		Short:   "Show the calendar and the deadlines of a day.",
		Example: `
advcontrol agenda
advcontrol agenda --on 2024-03-01
advcontrol agenda --next 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withScreens(cmd, func(_ *app.App, set *screens.Set) error {
				r := agenda.Agenda{
					Screens: set,
					On:      on.OnString,
					Next:    wo.Next,
					JSON:    oo.JSON,
					Out:     cmd.OutOrStdout(),
				}
				return r.Do(cmd.Context())
			})
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
