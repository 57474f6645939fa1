package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions is a look-ahead such as 3d or 2w.
type WindowOptions struct {
	Next string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Next, "next", "",
		`List deadlines coming up in a window, example: --next=3d or --next=2w.`)
}
