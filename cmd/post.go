package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPostCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create, like and delete posts",
	}

	cmd.AddCommand(newPostCreateCmd(app), newPostLikeCmd(app), newPostDeleteCmd(app))
	return cmd
}

func newPostCreateCmd(app *app) *cobra.Command {
	var content string
	var imagePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a post with text, an image or both",
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			post := domain.NewPost{Content: content}
			if imagePath != "" {
				upload, err := readUpload(imagePath)
				if err != nil {
					return err
				}
				post.Image = &upload
			}

			created, err := app.feed.Create(cmd.Context(), post)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created post #%d\n", created.ID)
			return err
		}),
	}

	cmd.Flags().StringVar(&content, "content", "", "Post text")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to an image to attach")

	return cmd
}

func newPostLikeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like or unlike a post",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			id, err := parseID("post", args[0])
			if err != nil {
				return err
			}

			result, err := app.feed.Like(cmd.Context(), domain.PostID(id))
			if err != nil {
				return err
			}

			state := "unliked"
			if result.IsLiked {
				state = "liked"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Post #%d %s (%d likes)\n", id, state, result.LikesCount)
			return err
		}),
	}
}

func newPostDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			id, err := parseID("post", args[0])
			if err != nil {
				return err
			}

			if err := app.feed.Delete(cmd.Context(), domain.PostID(id)); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted post #%d\n", id)
			return err
		}),
	}
}

func readUpload(path string) (domain.Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Upload{}, fmt.Errorf("read upload: %w", err)
	}

	return domain.Upload{Filename: filepath.Base(path), Data: data}, nil
}
