package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports"
)

var errEmptyComment = &domain.ValidationError{Fields: []domain.FieldError{{Field: "content", Message: "Comment cannot be empty"}}}

// Comments keeps one thread per post. Counts on the feed follow additions and removals
// when a feed is attached.
type Comments struct {
	api   ports.CommentAPI
	feed  *Feed
	notes *NotificationCenter

	mu      sync.Mutex
	threads map[domain.PostID][]domain.Comment
}

func NewComments(api ports.CommentAPI, feed *Feed, notes *NotificationCenter) *Comments {
	return &Comments{
		api:     api,
		feed:    feed,
		notes:   notes,
		threads: make(map[domain.PostID][]domain.Comment),
	}
}

func (c *Comments) List(ctx context.Context, postID domain.PostID) ([]domain.Comment, error) {
	comments, err := c.api.ListComments(ctx, postID)
	if err != nil {
		c.notes.Report(err, "Failed to load comments")
		return nil, fmt.Errorf("list comments: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.threads[postID] = comments
	return cloneComments(comments), nil
}

func (c *Comments) Add(ctx context.Context, postID domain.PostID, content string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		c.notes.Report(errEmptyComment, "Failed to add comment")
		return domain.Comment{}, errEmptyComment
	}

	created, err := c.api.AddComment(ctx, postID, content)
	if err != nil {
		c.notes.Report(err, "Failed to add comment")
		return domain.Comment{}, fmt.Errorf("add comment: %w", err)
	}

	c.mu.Lock()
	c.threads[postID] = append(c.threads[postID], created)
	c.mu.Unlock()

	c.bumpCount(postID, 1)
	c.notes.Success("Comment added successfully!")
	return created, nil
}

func (c *Comments) Reply(ctx context.Context, postID domain.PostID, commentID domain.CommentID, content string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		c.notes.Report(errEmptyComment, "Failed to add reply")
		return domain.Comment{}, errEmptyComment
	}

	reply, err := c.api.ReplyToComment(ctx, postID, commentID, content)
	if err != nil {
		c.notes.Report(err, "Failed to add reply")
		return domain.Comment{}, fmt.Errorf("reply to comment: %w", err)
	}
	if reply.ParentID == nil {
		parent := commentID
		reply.ParentID = &parent
	}

	c.mu.Lock()
	attachReply(c.threads[postID], commentID, reply)
	c.mu.Unlock()

	c.bumpCount(postID, 1)
	c.notes.Success("Reply added successfully!")
	return reply, nil
}

func (c *Comments) Delete(ctx context.Context, postID domain.PostID, commentID domain.CommentID) error {
	if err := c.api.DeleteComment(ctx, postID, commentID); err != nil {
		c.notes.Report(err, "Failed to delete comment")
		return fmt.Errorf("delete comment: %w", err)
	}

	c.mu.Lock()
	if thread, ok := c.threads[postID]; ok {
		c.threads[postID] = removeComment(thread, commentID)
	}
	c.mu.Unlock()

	c.bumpCount(postID, -1)
	c.notes.Success("Comment deleted successfully!")
	return nil
}

// Thread returns the cached comments of a post.
func (c *Comments) Thread(postID domain.PostID) []domain.Comment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneComments(c.threads[postID])
}

func (c *Comments) bumpCount(postID domain.PostID, delta int) {
	if c.feed != nil {
		c.feed.adjustComments(postID, delta)
	}
}

func attachReply(thread []domain.Comment, parentID domain.CommentID, reply domain.Comment) bool {
	for i := range thread {
		if thread[i].ID == parentID {
			thread[i].Replies = append(thread[i].Replies, reply)
			return true
		}
		if attachReply(thread[i].Replies, parentID, reply) {
			return true
		}
	}
	return false
}

func removeComment(thread []domain.Comment, id domain.CommentID) []domain.Comment {
	kept := make([]domain.Comment, 0, len(thread))
	for _, comment := range thread {
		if comment.ID == id {
			continue
		}
		comment.Replies = removeComment(comment.Replies, id)
		kept = append(kept, comment)
	}
	return kept
}

func cloneComments(thread []domain.Comment) []domain.Comment {
	if thread == nil {
		return nil
	}
	out := make([]domain.Comment, len(thread))
	for i, comment := range thread {
		comment.Replies = cloneComments(comment.Replies)
		out[i] = comment
	}
	return out
}
