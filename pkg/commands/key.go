package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/commands/options"
	"tableflip.dev/advcontrol/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the legend of status, priority and urgency colors.",
		Example: `
advcontrol key
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := key.Key{JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(k.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
