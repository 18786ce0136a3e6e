package domain

import (
	"fmt"
	"strings"
	"time"
)

type PostID int64

type CommentID int64

type Author struct {
	ID             UserID
	Username       string
	ProfilePicture string
}

type Post struct {
	ID            PostID
	Content       string
	Image         string
	Author        Author
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LikesCount    int
	CommentsCount int
	IsLiked       bool
}

type NewPost struct {
	Content string
	Image   *Upload
}

func (p NewPost) Validate() error {
	if strings.TrimSpace(p.Content) == "" && p.Image == nil {
		return &ValidationError{Fields: []FieldError{{Field: "content", Message: "Please add either text or an image"}}}
	}

	return nil
}

type LikeResult struct {
	IsLiked    bool
	LikesCount int
	Message    string
}

type Comment struct {
	ID        CommentID
	Content   string
	Author    Author
	CreatedAt time.Time
	UpdatedAt time.Time
	ParentID  *CommentID
	Replies   []Comment
}

type FeedView string

const (
	FeedViewHome      FeedView = "home"
	FeedViewFollowing FeedView = "following"
	FeedViewProfile   FeedView = "profile"
)

func ParseFeedView(raw string) (FeedView, error) {
	view := FeedView(strings.ToLower(strings.TrimSpace(raw)))
	switch view {
	case "":
		return FeedViewHome, nil
	case FeedViewHome, FeedViewFollowing, FeedViewProfile:
		return view, nil
	default:
		return "", fmt.Errorf("unsupported feed view %q", raw)
	}
}

type FeedQuery struct {
	View     FeedView
	Username string
	Page     int
}

func (q FeedQuery) Validate() error {
	if q.View == FeedViewProfile && strings.TrimSpace(q.Username) == "" {
		return &ValidationError{Fields: []FieldError{{Field: "username", Message: "Profile feed requires a username"}}}
	}
	if q.Page < 0 {
		return &ValidationError{Fields: []FieldError{{Field: "page", Message: "Page must not be negative"}}}
	}

	return nil
}

// Page is one page of a listing. HasMore is false once the server reports no next page.
type Page[T any] struct {
	Items   []T
	HasMore bool
}
