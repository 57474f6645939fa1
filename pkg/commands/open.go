package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/screens"
)

// withApp opens the environment for the duration of fn.
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, err := app.Open(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// withScreens is withApp for commands that need a signed-in session.
func withScreens(cmd *cobra.Command, fn func(a *app.App, set *screens.Set) error) error {
	return withApp(cmd, func(a *app.App) error {
		set, err := a.Screens()
		if err != nil {
			return err
		}
		return fn(a, set)
	})
}
