package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedLoadAndLoadMore(t *testing.T) {
	api := mocks.NewMockPostAPI(t)
	feed := NewFeed(api, NewNotificationCenter())

	api.EXPECT().ListPosts(mockAnyContext(), domain.FeedQuery{View: domain.FeedViewHome, Page: 1}).
		Return(domain.Page[domain.Post]{Items: []domain.Post{{ID: 3}, {ID: 2}}, HasMore: true}, nil)
	api.EXPECT().ListPosts(mockAnyContext(), domain.FeedQuery{View: domain.FeedViewHome, Page: 2}).
		Return(domain.Page[domain.Post]{Items: []domain.Post{{ID: 1}}}, nil)

	posts, err := feed.Load(context.Background(), domain.FeedQuery{})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.True(t, feed.HasMore())

	posts, err = feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.PostID{3, 2, 1}, postIDs(posts))
	assert.False(t, feed.HasMore())

	posts, err = feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}

func TestFeedLoadMoreBeforeLoad(t *testing.T) {
	feed := NewFeed(mocks.NewMockPostAPI(t), NewNotificationCenter())

	_, err := feed.LoadMore(context.Background())

	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestFeedLoadFailureNotifies(t *testing.T) {
	api := mocks.NewMockPostAPI(t)
	notes := NewNotificationCenter()
	feed := NewFeed(api, notes)

	api.EXPECT().ListPosts(mockAnyContext(), mock.Anything).
		Return(domain.Page[domain.Post]{}, &domain.NetworkError{Op: "GET /posts/", Err: errors.New("refused")})

	_, err := feed.Load(context.Background(), domain.FeedQuery{View: domain.FeedViewFollowing})

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Len(t, notes.List(), 1)
	assert.Equal(t, "Failed to load posts", notes.List()[0].Message)
}

func TestFeedCreateRequiresContentOrImage(t *testing.T) {
	api := mocks.NewMockPostAPI(t)
	notes := NewNotificationCenter()
	feed := NewFeed(api, notes)

	_, err := feed.Create(context.Background(), domain.NewPost{Content: "  "})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Please add either text or an image", notes.List()[0].Message)
	api.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestFeedCreatePrependsPost(t *testing.T) {
	api := mocks.NewMockPostAPI(t)
	notes := NewNotificationCenter()
	feed := NewFeed(api, notes)

	api.EXPECT().ListPosts(mockAnyContext(), mock.Anything).
		Return(domain.Page[domain.Post]{Items: []domain.Post{{ID: 1}}}, nil)
	api.EXPECT().CreatePost(mockAnyContext(), domain.NewPost{Content: "hello"}).
		Return(domain.Post{ID: 2, Content: "hello"}, nil)

	_, err := feed.Load(context.Background(), domain.FeedQuery{})
	require.NoError(t, err)
	_, err = feed.Create(context.Background(), domain.NewPost{Content: "hello"})
	require.NoError(t, err)

	assert.Equal(t, []domain.PostID{2, 1}, postIDs(feed.Posts()))
	assert.Equal(t, domain.NotificationSuccess, notes.List()[0].Type)
}

func TestFeedLikePatchesLoadedPost(t *testing.T) {
	api := mocks.NewMockPostAPI(t)
	feed := NewFeed(api, NewNotificationCenter())

	api.EXPECT().ListPosts(mockAnyContext(), mock.Anything).
		Return(domain.Page[domain.Post]{Items: []domain.Post{{ID: 1, LikesCount: 4}}}, nil)
	api.EXPECT().ToggleLike(mockAnyContext(), domain.PostID(1)).
		Return(domain.LikeResult{IsLiked: true, LikesCount: 5, Message: "Post liked"}, nil)

	_, err := feed.Load(context.Background(), domain.FeedQuery{})
	require.NoError(t, err)
	result, err := feed.Like(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, result.IsLiked)
	post := feed.Posts()[0]
	assert.True(t, post.IsLiked)
	assert.Equal(t, 5, post.LikesCount)
}

func TestFeedDeleteRemovesPost(t *testing.T) {
	api := mocks.NewMockPostAPI(t)
	feed := NewFeed(api, NewNotificationCenter())

	api.EXPECT().ListPosts(mockAnyContext(), mock.Anything).
		Return(domain.Page[domain.Post]{Items: []domain.Post{{ID: 1}, {ID: 2}}}, nil)
	api.EXPECT().DeletePost(mockAnyContext(), domain.PostID(1)).Return(nil)

	_, err := feed.Load(context.Background(), domain.FeedQuery{})
	require.NoError(t, err)
	require.NoError(t, feed.Delete(context.Background(), 1))

	assert.Equal(t, []domain.PostID{2}, postIDs(feed.Posts()))
}

func postIDs(posts []domain.Post) []domain.PostID {
	ids := make([]domain.PostID, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	return ids
}
