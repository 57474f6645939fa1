package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/timeutil"
)

// OnOptions selects a calendar date.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-03-01", --on="01/03" or --on=tomorrow.`)
}

// GetOn parses the date relative to now. Empty means today.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	return timeutil.ParseDate(o.OnString, now)
}
