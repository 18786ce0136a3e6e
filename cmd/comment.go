package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/devconnect-cli/internal/adapters/render/social"
	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCommentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Read and write comments on a post",
	}

	cmd.AddCommand(
		newCommentListCmd(app),
		newCommentAddCmd(app),
		newCommentReplyCmd(app),
		newCommentDeleteCmd(app),
	)
	return cmd
}

func newCommentListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <post-id>",
		Short: "Show the comment thread of a post",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			id, err := parseID("post", args[0])
			if err != nil {
				return err
			}
			postID := domain.PostID(id)

			fetch := func(ctx context.Context) error {
				_, err := app.comments.List(ctx, postID)
				return err
			}
			if err := runFetch(cmd.Context(), cmd.ErrOrStderr(), "Loading comments...", asJSON, fetch); err != nil {
				return err
			}

			thread := app.comments.Thread(postID)
			if asJSON {
				return writeJSON(cmd, thread)
			}
			return writeDocument(cmd, app, social.Thread{PostID: postID, Comments: thread})
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newCommentAddCmd(app *app) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "add <post-id>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			id, err := parseID("post", args[0])
			if err != nil {
				return err
			}

			comment, err := app.comments.Add(cmd.Context(), domain.PostID(id), content)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added comment #%d\n", comment.ID)
			return err
		}),
	}

	cmd.Flags().StringVar(&content, "content", "", "Comment text")
	return cmd
}

func newCommentReplyCmd(app *app) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "reply <post-id> <comment-id>",
		Short: "Reply to a comment",
		Args:  cobra.ExactArgs(2),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			postID, err := parseID("post", args[0])
			if err != nil {
				return err
			}
			commentID, err := parseID("comment", args[1])
			if err != nil {
				return err
			}

			reply, err := app.comments.Reply(cmd.Context(), domain.PostID(postID), domain.CommentID(commentID), content)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added reply #%d to comment #%d\n", reply.ID, commentID)
			return err
		}),
	}

	cmd.Flags().StringVar(&content, "content", "", "Reply text")
	return cmd
}

func newCommentDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id> <comment-id>",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			postID, err := parseID("post", args[0])
			if err != nil {
				return err
			}
			commentID, err := parseID("comment", args[1])
			if err != nil {
				return err
			}

			if err := app.comments.Delete(cmd.Context(), domain.PostID(postID), domain.CommentID(commentID)); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted comment #%d\n", commentID)
			return err
		}),
	}
}
