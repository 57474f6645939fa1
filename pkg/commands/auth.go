package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/commands/options"
	"tableflip.dev/advcontrol/pkg/runner/auth"
)

func addLogin(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session.",
		Example: `
advcontrol login
advcontrol login --email ana@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withApp(cmd, func(a *app.App) error {
				l := auth.Login{
					App:      a,
					Email:    co.Email,
					Password: co.Password,
					Prompt:   auth.TerminalPrompt,
					JSON:     oo.JSON,
					Out:      cmd.OutOrStdout(),
				}
				return l.Do(cmd.Context())
			})
			return oo.HandleError(err)
		},
	}

	options.AddCredentialArgs(cmd, co)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addRegister(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in.",
		Example: `
advcontrol register --name "Ana Souza" --email ana@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withApp(cmd, func(a *app.App) error {
				r := auth.Register{
					App:      a,
					Name:     co.Name,
					Email:    co.Email,
					Password: co.Password,
					Prompt:   auth.TerminalPrompt,
					JSON:     oo.JSON,
					Out:      cmd.OutOrStdout(),
				}
				return r.Do(cmd.Context())
			})
			return oo.HandleError(err)
		},
	}

	options.AddNameArg(cmd, co)
	options.AddCredentialArgs(cmd, co)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the session and the cached collections.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withApp(cmd, func(a *app.App) error {
				l := auth.Logout{App: a, JSON: oo.JSON, Out: cmd.OutOrStdout()}
				return l.Do(cmd.Context())
			})
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addWhoAmI(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and when the token expires.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withApp(cmd, func(a *app.App) error {
				w := auth.WhoAmI{App: a, JSON: oo.JSON, Out: cmd.OutOrStdout()}
				return w.Do(cmd.Context())
			})
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
