package options

import (
	"github.com/spf13/cobra"
)

// CredentialOptions are the sign-in fields. Anything left empty is prompted.
type CredentialOptions struct {
	Name     string
	Email    string
	Password string
}

func AddCredentialArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email.")
	cmd.Flags().StringVar(&o.Password, "password", "",
		"Account password. Prompted when omitted.")
}

func AddNameArg(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Full name for the new account.")
}
