package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports"
)

// Client is the authenticated resource API. Every call goes through the pipeline.
type Client struct {
	pipeline    *Pipeline
	credentials ports.CredentialStore
}

var errUserNotListed = errors.New("user not found in directory")

var (
	_ ports.PostAPI             = (*Client)(nil)
	_ ports.CommentAPI          = (*Client)(nil)
	_ ports.UserAPI             = (*Client)(nil)
	_ ports.CurrentUserResolver = (*Client)(nil)
)

func NewClient(pipeline *Pipeline, credentials ports.CredentialStore) *Client {
	return &Client{pipeline: pipeline, credentials: credentials}
}

func (c *Client) ListPosts(ctx context.Context, query domain.FeedQuery) (domain.Page[domain.Post], error) {
	params := url.Values{}
	params.Set("view_type", string(query.View))
	if query.Username != "" {
		params.Set("username", query.Username)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}

	const path = "posts/"
	resp, err := c.pipeline.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: params})
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}

	items, hasMore, err := decodePage[postPayload](path, resp.Body)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}

	posts := make([]domain.Post, 0, len(items))
	for _, item := range items {
		posts = append(posts, item.toDomain())
	}
	return domain.Page[domain.Post]{Items: posts, HasMore: hasMore}, nil
}

func (c *Client) CreatePost(ctx context.Context, post domain.NewPost) (domain.Post, error) {
	form := newMultipartForm()
	if post.Content != "" {
		form.field("content", post.Content)
	}
	if post.Image != nil {
		form.file("image", *post.Image)
	}
	body, contentType, err := form.finish()
	if err != nil {
		return domain.Post{}, fmt.Errorf("encode post: %w", err)
	}

	const path = "posts/"
	resp, err := c.pipeline.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body, ContentType: contentType})
	if err != nil {
		return domain.Post{}, err
	}

	payload, err := decode[postPayload](path, resp.Body)
	if err != nil {
		return domain.Post{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) DeletePost(ctx context.Context, id domain.PostID) error {
	_, err := c.pipeline.Do(ctx, Request{Method: http.MethodDelete, Path: fmt.Sprintf("posts/%d/", id)})
	return err
}

func (c *Client) ToggleLike(ctx context.Context, id domain.PostID) (domain.LikeResult, error) {
	path := fmt.Sprintf("posts/%d/like/", id)
	resp, err := c.pipeline.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: []byte("{}"), ContentType: "application/json"})
	if err != nil {
		return domain.LikeResult{}, err
	}

	payload, err := decode[likePayload](path, resp.Body)
	if err != nil {
		return domain.LikeResult{}, err
	}
	return domain.LikeResult{IsLiked: payload.IsLiked, LikesCount: payload.LikesCount, Message: payload.Message}, nil
}

func (c *Client) ListComments(ctx context.Context, postID domain.PostID) ([]domain.Comment, error) {
	path := fmt.Sprintf("posts/%d/comments/", postID)
	resp, err := c.pipeline.Do(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	items, _, err := decodePage[commentPayload](path, resp.Body)
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(items))
	for _, item := range items {
		comments = append(comments, item.toDomain())
	}
	return comments, nil
}

func (c *Client) AddComment(ctx context.Context, postID domain.PostID, content string) (domain.Comment, error) {
	return c.postComment(ctx, fmt.Sprintf("posts/%d/comments/", postID), content)
}

func (c *Client) ReplyToComment(ctx context.Context, postID domain.PostID, commentID domain.CommentID, content string) (domain.Comment, error) {
	return c.postComment(ctx, fmt.Sprintf("posts/%d/comments/%d/reply/", postID, commentID), content)
}

func (c *Client) DeleteComment(ctx context.Context, postID domain.PostID, commentID domain.CommentID) error {
	_, err := c.pipeline.Do(ctx, Request{Method: http.MethodDelete, Path: fmt.Sprintf("posts/%d/comments/%d/", postID, commentID)})
	return err
}

func (c *Client) postComment(ctx context.Context, path, content string) (domain.Comment, error) {
	body, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("encode comment: %w", err)
	}

	resp, err := c.pipeline.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body, ContentType: "application/json"})
	if err != nil {
		return domain.Comment{}, err
	}

	payload, err := decode[commentPayload](path, resp.Body)
	if err != nil {
		return domain.Comment{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	const path = "users/"
	resp, err := c.pipeline.Do(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	items, _, err := decodePage[userPayload](path, resp.Body)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		users = append(users, item.toDomain())
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	path := fmt.Sprintf("users/%d/", id)
	resp, err := c.pipeline.Do(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return domain.User{}, err
	}

	payload, err := decode[userPayload](path, resp.Body)
	if err != nil {
		return domain.User{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) ToggleFollow(ctx context.Context, id domain.UserID) error {
	_, err := c.pipeline.Do(ctx, Request{Method: http.MethodPost, Path: fmt.Sprintf("users/%d/follow/", id), Body: []byte("{}"), ContentType: "application/json"})
	return err
}

func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	form := newMultipartForm()
	if update.Bio != "" {
		form.field("bio", update.Bio)
	}
	if update.Location != "" {
		form.field("location", update.Location)
	}
	if update.BirthDate != "" {
		form.field("birth_date", update.BirthDate)
	}
	if update.Picture != nil {
		form.file("profile_picture", *update.Picture)
	}
	body, contentType, err := form.finish()
	if err != nil {
		return domain.User{}, fmt.Errorf("encode profile update: %w", err)
	}

	const path = "users/me/"
	resp, err := c.pipeline.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body, ContentType: contentType})
	if err != nil {
		return domain.User{}, err
	}

	payload, err := decode[userPayload](path, resp.Body)
	if err != nil {
		return domain.User{}, err
	}
	return payload.toDomain(), nil
}

// CurrentUser resolves the identity behind the stored access credential.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	pair, err := c.credentials.Load(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("load credentials: %w", err)
	}

	claims, err := ParseAccessClaims(pair.Access)
	if err != nil {
		return domain.User{}, err
	}

	user, err := c.GetUser(ctx, claims.UserID)
	var apiErr *domain.APIError
	if err == nil || !errors.As(err, &apiErr) || (apiErr.StatusCode != http.StatusNotFound && apiErr.StatusCode != http.StatusMethodNotAllowed) {
		return user, err
	}

	// Deployments without the detail route still list every user.
	users, err := c.ListUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, candidate := range users {
		if candidate.ID == claims.UserID {
			return candidate, nil
		}
	}
	return domain.User{}, fmt.Errorf("resolve current user %d: %w", claims.UserID, errUserNotListed)
}

type multipartForm struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func newMultipartForm() *multipartForm {
	form := &multipartForm{}
	form.writer = multipart.NewWriter(&form.buf)
	return form
}

func (f *multipartForm) field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.writer.WriteField(name, value)
}

func (f *multipartForm) file(name string, upload domain.Upload) {
	if f.err != nil {
		return
	}
	part, err := f.writer.CreateFormFile(name, upload.Filename)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = part.Write(upload.Data)
}

func (f *multipartForm) finish() ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if err := f.writer.Close(); err != nil {
		return nil, "", err
	}
	return f.buf.Bytes(), f.writer.FormDataContentType(), nil
}
