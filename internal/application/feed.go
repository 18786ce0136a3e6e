package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports"
)

// Feed holds the loaded post list and patches it after every call.
type Feed struct {
	posts ports.PostAPI
	notes *NotificationCenter

	mu      sync.Mutex
	query   domain.FeedQuery
	loaded  bool
	items   []domain.Post
	hasMore bool
}

func NewFeed(posts ports.PostAPI, notes *NotificationCenter) *Feed {
	return &Feed{posts: posts, notes: notes}
}

// Load replaces the list with one page of query, the first unless Page is set.
func (f *Feed) Load(ctx context.Context, query domain.FeedQuery) ([]domain.Post, error) {
	if query.View == "" {
		query.View = domain.FeedViewHome
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if err := query.Validate(); err != nil {
		f.notes.Report(err, "Failed to load posts")
		return nil, err
	}

	page, err := f.posts.ListPosts(ctx, query)
	if err != nil {
		f.notes.Report(err, "Failed to load posts")
		return nil, fmt.Errorf("load feed: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = query
	f.loaded = true
	f.items = append([]domain.Post(nil), page.Items...)
	f.hasMore = page.HasMore
	return f.snapshotLocked(), nil
}

// LoadMore appends the next page. It returns the unchanged list when the last page
// has already been read.
func (f *Feed) LoadMore(ctx context.Context) ([]domain.Post, error) {
	f.mu.Lock()
	if !f.loaded {
		f.mu.Unlock()
		return nil, fmt.Errorf("load more posts: %w", domain.ErrInvalidState)
	}
	if !f.hasMore {
		defer f.mu.Unlock()
		return f.snapshotLocked(), nil
	}
	next := f.query
	next.Page++
	f.mu.Unlock()

	page, err := f.posts.ListPosts(ctx, next)
	if err != nil {
		f.notes.Report(err, "Failed to load more posts")
		return nil, fmt.Errorf("load more posts: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = next
	f.items = append(f.items, page.Items...)
	f.hasMore = page.HasMore
	return f.snapshotLocked(), nil
}

func (f *Feed) Create(ctx context.Context, post domain.NewPost) (domain.Post, error) {
	if err := post.Validate(); err != nil {
		f.notes.Report(err, "Failed to create post")
		return domain.Post{}, err
	}

	created, err := f.posts.CreatePost(ctx, post)
	if err != nil {
		f.notes.Report(err, "Failed to create post")
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}

	f.mu.Lock()
	f.items = append([]domain.Post{created}, f.items...)
	f.mu.Unlock()

	f.notes.Success("Post created successfully!")
	return created, nil
}

func (f *Feed) Like(ctx context.Context, id domain.PostID) (domain.LikeResult, error) {
	result, err := f.posts.ToggleLike(ctx, id)
	if err != nil {
		f.notes.Report(err, "Failed to update like")
		return domain.LikeResult{}, fmt.Errorf("toggle like: %w", err)
	}

	f.mu.Lock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsLiked = result.IsLiked
			f.items[i].LikesCount = result.LikesCount
		}
	}
	f.mu.Unlock()

	if result.Message != "" {
		f.notes.Success(result.Message)
	}
	return result, nil
}

func (f *Feed) Delete(ctx context.Context, id domain.PostID) error {
	if err := f.posts.DeletePost(ctx, id); err != nil {
		f.notes.Report(err, "Failed to delete post")
		return fmt.Errorf("delete post: %w", err)
	}

	f.mu.Lock()
	kept := f.items[:0]
	for _, post := range f.items {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	f.items = kept
	f.mu.Unlock()

	f.notes.Success("Post deleted successfully!")
	return nil
}

func (f *Feed) Posts() []domain.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

func (f *Feed) Query() domain.FeedQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.query
}

// adjustComments shifts the comment count of a loaded post. Unknown ids are ignored.
func (f *Feed) adjustComments(id domain.PostID, delta int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		f.items[i].CommentsCount = max(f.items[i].CommentsCount+delta, 0)
	}
}

func (f *Feed) snapshotLocked() []domain.Post {
	out := make([]domain.Post, len(f.items))
	copy(out, f.items)
	return out
}
