package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/views"
)

// FilterOptions selects which financial records are listed.
type FilterOptions struct {
	Filter string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", string(views.FilterAll),
		"Records to list: all, receivable or payable. Totals always cover every record.")
	_ = cmd.RegisterFlagCompletionFunc("filter", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(views.FilterAll), string(views.FilterReceivable), string(views.FilterPayable)}, cobra.ShellCompDirectiveNoFileComp
	})
}
