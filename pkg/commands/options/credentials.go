package options

import "github.com/spf13/cobra"

// CredentialOptions carries login and signup fields.
type CredentialOptions struct {
	Name     string
	Email    string
	Password string
}

func AddLoginArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Email address.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		Wrap80("Password. Read from STUDYED_PASSWORD when unset."))
}

func AddSignupArgs(cmd *cobra.Command, o *CredentialOptions) {
	AddLoginArgs(cmd, o)
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Full name.")
}
