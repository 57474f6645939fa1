package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/advcontrol/pkg/commands/options"
	"tableflip.dev/advcontrol/pkg/snake"
)

func New() *cobra.Command {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "advcontrol",
		Short: base.Wrap80("Deadlines, cases and finances of a law practice on the command line."),
		Long: base.Wrap80("advcontrol signs in to the AdvControl API, keeps the session between runs " +
			"and renders the agenda, case list, financial totals and dashboard. The last good copy " +
			"of each collection is cached so a failed refresh still shows data."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !i.Interactive {
				return cmd.Help()
			}
			next, err := snake.PickCommand(cmd)
			if err != nil {
				return err
			}
			cmd.SetArgs([]string{next.Name()})
			return cmd.ExecuteContext(cmd.Context())
		},
	}
	options.InteractiveArgs(cmd, i)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addRegister(topLevel)
	addLogout(topLevel)
	addWhoAmI(topLevel)
	addAgenda(topLevel)
	addCases(topLevel)
	addFinance(topLevel)
	addDashboard(topLevel)
	addSync(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}
