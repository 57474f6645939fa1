package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/commands/options"
	"tableflip.dev/advcontrol/pkg/runner/finance"
	"tableflip.dev/advcontrol/pkg/screens"
)

func addFinance(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "finance",
		Aliases: []string{"financeiro"},
		Short:   "Show receivable, payable and overdue totals and list records.",
		Example: `
advcontrol finance
advcontrol finance --filter payable
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withScreens(cmd, func(_ *app.App, set *screens.Set) error {
				r := finance.Finance{Screens: set, Filter: fo.Filter, JSON: oo.JSON, Out: cmd.OutOrStdout()}
				return r.Do(cmd.Context())
			})
			return oo.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
