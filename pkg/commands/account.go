package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/studyed/pkg/commands/options"
	"tableflip.dev/studyed/pkg/runner/account"
	"tableflip.dev/studyed/pkg/session"
)

const passwordEnv = "STUDYED_PASSWORD"

func password(o *options.CredentialOptions) string {
	if o.Password != "" {
		return o.Password
	}
	return os.Getenv(passwordEnv)
}

func addLogin(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session.",
		Long: options.Wrap80("Start a session. When an account exists for the email the password " +
			"is checked, otherwise the email becomes the display name."),
		Example: `
studyed login --email ada@example.com --password analytical
STUDYED_PASSWORD=analytical studyed login -e ada@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			l := account.Login{
				Provider: svc.Session,
				Form:     session.LoginForm{Email: co.Email, Password: password(co)},
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddLoginArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addSignup(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and start a session.",
		Example: `
studyed signup --name "Ada Lovelace" --email ada@example.com --password analytical
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			s := account.Signup{
				Provider: svc.Session,
				Form:     session.SignupForm{Name: co.Name, Email: co.Email, Password: password(co)},
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddSignupArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session.",
		Example: `
studyed logout
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			l := account.Logout{Provider: svc.Session}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the logged-in user, or Guest.",
		Example: `
studyed whoami
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			w := account.Whoami{Provider: svc.Session}
			return w.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
