package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/devconnect-cli/internal/adapters/render/social"
	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Browse and follow developers",
	}

	cmd.AddCommand(newUserListCmd(app), newUserFollowCmd(app))
	return cmd
}

func newUserListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List developers",
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			fetch := func(ctx context.Context) error {
				_, err := app.directory.List(ctx)
				return err
			}
			if err := runFetch(cmd.Context(), cmd.ErrOrStderr(), "Loading users...", asJSON, fetch); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, app.directory.Users())
			}
			return writeDocument(cmd, app, social.Directory{Users: app.directory.Users()})
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newUserFollowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "follow <user-id>",
		Short: "Follow or unfollow a developer",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			id, err := parseID("user", args[0])
			if err != nil {
				return err
			}

			// The current relationship comes from the listing.
			if _, err := app.directory.List(cmd.Context()); err != nil {
				return err
			}

			following, err := app.directory.ToggleFollow(cmd.Context(), domain.UserID(id))
			if err != nil {
				return err
			}

			state := "Unfollowed"
			if following {
				state = "Following"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s user #%d\n", state, id)
			return err
		}),
	}
}
