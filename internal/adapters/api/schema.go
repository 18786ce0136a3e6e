package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	schemaValidator   = validator.New(validator.WithRequiredStructEnabled())
	errMissingResults = errors.New("paginated body has no results")
)

type tokenPayload struct {
	Access  string      `json:"access" validate:"required"`
	Refresh string      `json:"refresh" validate:"required"`
	User    userPayload `json:"user" validate:"required"`
}

type refreshPayload struct {
	Access string `json:"access" validate:"required"`
}

type userPayload struct {
	ID             int64  `json:"id" validate:"required,gt=0"`
	Username       string `json:"username" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
	BirthDate      string `json:"birth_date"`
	ProfilePicture string `json:"profile_picture"`
	IsFollowed     bool   `json:"is_followed"`
}

func (p userPayload) toDomain() domain.User {
	return domain.User{
		ID:             domain.UserID(p.ID),
		Username:       p.Username,
		Email:          p.Email,
		Bio:            p.Bio,
		Location:       p.Location,
		BirthDate:      p.BirthDate,
		ProfilePicture: p.ProfilePicture,
		IsFollowed:     p.IsFollowed,
	}
}

type authorPayload struct {
	ID             int64  `json:"id" validate:"required,gt=0"`
	Username       string `json:"username" validate:"required"`
	ProfilePicture string `json:"profile_picture"`
}

func (p authorPayload) toDomain() domain.Author {
	return domain.Author{ID: domain.UserID(p.ID), Username: p.Username, ProfilePicture: p.ProfilePicture}
}

type postPayload struct {
	ID            int64         `json:"id" validate:"required,gt=0"`
	Content       string        `json:"content"`
	Image         string        `json:"image"`
	Author        authorPayload `json:"author" validate:"required"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	LikesCount    int           `json:"likes_count" validate:"gte=0"`
	CommentsCount int           `json:"comments_count" validate:"gte=0"`
	IsLiked       bool          `json:"is_liked"`
}

func (p postPayload) toDomain() domain.Post {
	return domain.Post{
		ID:            domain.PostID(p.ID),
		Content:       p.Content,
		Image:         p.Image,
		Author:        p.Author.toDomain(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		IsLiked:       p.IsLiked,
	}
}

type likePayload struct {
	Message    string `json:"message"`
	IsLiked    bool   `json:"is_liked"`
	LikesCount int    `json:"likes_count" validate:"gte=0"`
}

type commentPayload struct {
	ID            int64            `json:"id" validate:"required,gt=0"`
	Content       string           `json:"content" validate:"required"`
	Author        authorPayload    `json:"author" validate:"required"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	ParentComment *int64           `json:"parent_comment"`
	Replies       []commentPayload `json:"replies" validate:"dive"`
}

func (p commentPayload) toDomain() domain.Comment {
	comment := domain.Comment{
		ID:        domain.CommentID(p.ID),
		Content:   p.Content,
		Author:    p.Author.toDomain(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.ParentComment != nil {
		parent := domain.CommentID(*p.ParentComment)
		comment.ParentID = &parent
	}
	for _, reply := range p.Replies {
		comment.Replies = append(comment.Replies, reply.toDomain())
	}
	return comment
}

type listPayload[T any] struct {
	Items []T `validate:"dive"`
}

// pagePayload accepts both a bare JSON array and a paginated {results, next} object.
type pagePayload[T any] struct {
	Results []T     `json:"results" validate:"dive"`
	Next    *string `json:"next"`
}

// decode unmarshals body into out and checks its schema tags.
func decode[T any](endpoint string, body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &domain.MalformedResponseError{Endpoint: endpoint, Err: err}
	}
	if err := schemaValidator.Struct(out); err != nil {
		return out, &domain.MalformedResponseError{Endpoint: endpoint, Err: err}
	}
	return out, nil
}

func decodeList[T any](endpoint string, body []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &domain.MalformedResponseError{Endpoint: endpoint, Err: err}
	}
	if err := schemaValidator.Struct(listPayload[T]{Items: items}); err != nil {
		return nil, &domain.MalformedResponseError{Endpoint: endpoint, Err: err}
	}
	return items, nil
}

// decodePage returns the items and whether another page may follow. A bare array
// has more pages for as long as it is non-empty.
func decodePage[T any](endpoint string, body []byte) ([]T, bool, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		items, err := decodeList[T](endpoint, trimmed)
		if err != nil {
			return nil, false, err
		}
		return items, len(items) > 0, nil
	}

	page, err := decode[pagePayload[T]](endpoint, trimmed)
	if err != nil {
		return nil, false, err
	}
	if page.Results == nil {
		return nil, false, &domain.MalformedResponseError{Endpoint: endpoint, Err: errMissingResults}
	}
	return page.Results, page.Next != nil && *page.Next != "", nil
}
