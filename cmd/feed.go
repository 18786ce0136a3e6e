package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/devconnect-cli/internal/adapters/render/social"
	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

type feedOutput struct {
	View    domain.FeedView
	Page    int
	HasMore bool
	Posts   []domain.Post
}

func newFeedCmd(app *app) *cobra.Command {
	var view string
	var username string
	var page int
	var pages int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the home, following or profile feed",
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			feedView, err := domain.ParseFeedView(view)
			if err != nil {
				return err
			}
			if page < 1 {
				return fmt.Errorf("invalid page %d", page)
			}
			if pages < 1 {
				return fmt.Errorf("invalid page count %d", pages)
			}

			query := domain.FeedQuery{View: feedView, Username: username, Page: page}
			fetch := func(ctx context.Context) error {
				if _, err := app.feed.Load(ctx, query); err != nil {
					return err
				}
				for loaded := 1; loaded < pages && app.feed.HasMore(); loaded++ {
					if _, err := app.feed.LoadMore(ctx); err != nil {
						return err
					}
				}
				return nil
			}

			if err := runFetch(cmd.Context(), cmd.ErrOrStderr(), "Loading posts...", asJSON, fetch); err != nil {
				return err
			}

			current := app.feed.Query()
			if asJSON {
				return writeJSON(cmd, feedOutput{
					View:    current.View,
					Page:    current.Page,
					HasMore: app.feed.HasMore(),
					Posts:   app.feed.Posts(),
				})
			}

			return writeDocument(cmd, app, social.Feed{Query: current, Posts: app.feed.Posts(), HasMore: app.feed.HasMore()})
		}),
	}

	cmd.Flags().StringVar(&view, "view", string(domain.FeedViewHome), "Feed view: home, following or profile")
	cmd.Flags().StringVar(&username, "user", "", "Username for the profile view")
	cmd.Flags().IntVar(&page, "page", 1, "First page to load")
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
