package ports

import (
	"context"

	"github.com/bnema/devconnect-cli/internal/domain"
)

type PostAPI interface {
	ListPosts(ctx context.Context, query domain.FeedQuery) (domain.Page[domain.Post], error)
	CreatePost(ctx context.Context, post domain.NewPost) (domain.Post, error)
	DeletePost(ctx context.Context, id domain.PostID) error
	ToggleLike(ctx context.Context, id domain.PostID) (domain.LikeResult, error)
}

type CommentAPI interface {
	ListComments(ctx context.Context, postID domain.PostID) ([]domain.Comment, error)
	AddComment(ctx context.Context, postID domain.PostID, content string) (domain.Comment, error)
	ReplyToComment(ctx context.Context, postID domain.PostID, commentID domain.CommentID, content string) (domain.Comment, error)
	DeleteComment(ctx context.Context, postID domain.PostID, commentID domain.CommentID) error
}

type UserAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ToggleFollow(ctx context.Context, id domain.UserID) error
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error)
}

type Registrar interface {
	Register(ctx context.Context, registration domain.Registration) (domain.User, error)
}
