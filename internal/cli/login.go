package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"bluewave/internal/session"
)

// LoginOptions holds flags for the login command.
type LoginOptions struct {
	*RootOptions
	Password string
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and start a session",
		Long: `Log in as the given user.

The demo ships with a single shared password; the username "admin" gets
the admin role, any other username logs in as a cashier.

Example:
  bluewave login admin --password password123`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "account password")

	return cmd
}

func runLogin(opts *LoginOptions, username string, cmd *cobra.Command) error {
	app, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer app.close()

	current, err := app.sessions.Login(username, opts.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		return app.out.DomainError(err)
	}
	if err != nil {
		return app.out.DomainError(err)
	}

	if opts.Format == "json" {
		return app.out.Success(current)
	}
	return app.out.Successf("Welcome back, %s! (%s)", current.FullName, current.Role)
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the active session",
		Long: `End the active session.

Domain data is left untouched; only the persisted session is cleared.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.sessions.Logout(); err != nil {
				if errors.Is(err, session.ErrNotLoggedIn) {
					return app.out.Successf("No active session.")
				}
				return app.out.DomainError(err)
			}
			return app.out.Successf("You have been logged out.")
		},
	}
	return cmd
}
