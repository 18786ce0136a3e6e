package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/devconnect-cli/internal/adapters/api"
	"github.com/bnema/devconnect-cli/internal/adapters/render/social"
	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign out and manage your account",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthLogoutCmd(app),
		newAuthRegisterCmd(app),
		newAuthWhoamiCmd(app),
	)

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var username string
	var password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with username and password",
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			if passwordStdin {
				read, err := readPassword(cmd)
				if err != nil {
					return err
				}
				password = read
			}

			session, err := app.session.Login(cmd.Context(), domain.LoginCredentials{Username: username, Password: password})
			if err != nil {
				app.notes.Report(err, "Login failed")
				return fmt.Errorf("login: %w", err)
			}
			app.notes.Success("Welcome back!")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", session.User.Username)
			return err
		}),
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("username")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

func readPassword(cmd *cobra.Command) (string, error) {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget stored credentials",
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return signOut(cmd.Context(), app.session, cmd.OutOrStdout())
		}),
	}
}

// signOut reports a storage failure separately from the session reset, which has
// already happened by the time Logout returns.
func signOut(ctx context.Context, session ports.SessionTerminator, out io.Writer) error {
	if err := session.Logout(ctx); err != nil {
		_, _ = fmt.Fprintln(out, "Signed out of this session, but the stored credentials could not be removed")
		return fmt.Errorf("logout: %w", err)
	}

	_, err := fmt.Fprintln(out, "Signed out")
	return err
}

func newAuthRegisterCmd(app *app) *cobra.Command {
	var registration domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a DevConnect account",
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			user, err := app.directory.Register(cmd.Context(), registration)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", user.Username)
			return err
		}),
	}

	cmd.Flags().StringVar(&registration.Username, "username", "", "Username")
	cmd.Flags().StringVar(&registration.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&registration.Password, "password", "", "Password")
	cmd.Flags().StringVar(&registration.ConfirmPassword, "confirm-password", "", "Password again")

	return cmd
}

type whoamiOutput struct {
	Authenticated bool
	Profile       string
	User          *domain.User
	ExpiresAt     *time.Time
	AccessExpired bool
}

func newAuthWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			session, err := app.session.Resume(cmd.Context(), app.client)
			if err != nil && !errors.Is(err, domain.ErrCredentialsNotFound) {
				return fmt.Errorf("whoami: %w", err)
			}

			out := whoamiOutput{Authenticated: session.IsAuthenticated, Profile: app.settings.Credentials.Profile, User: session.User}
			if session.IsAuthenticated {
				if claims, ok := accessClaims(cmd, app); ok {
					expires := claims.ExpiresAt
					out.ExpiresAt = &expires
					out.AccessExpired = claims.Expired(app.now())
				}
			}

			if asJSON {
				return writeJSON(cmd, out)
			}

			doc := social.Whoami{Session: session, Profile: out.Profile}
			if out.ExpiresAt != nil {
				doc.ExpiresAt = *out.ExpiresAt
			}
			return writeDocument(cmd, app, doc)
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func accessClaims(cmd *cobra.Command, app *app) (api.AccessClaims, bool) {
	pair, err := app.credentials.Load(cmd.Context())
	if err != nil {
		return api.AccessClaims{}, false
	}

	claims, err := api.ParseAccessClaims(pair.Access)
	if err != nil || claims.ExpiresAt.IsZero() {
		app.logger.Debug().Err(err).Msg("read access credential expiry")
		return api.AccessClaims{}, false
	}
	return claims, true
}
