package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/devconnect-cli/internal/domain"
	portmocks "github.com/bnema/devconnect-cli/internal/ports/mocks"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		retried bool
		want    Outcome
	}{
		{name: "ok", status: http.StatusOK, want: OutcomeDone},
		{name: "server error", status: http.StatusInternalServerError, want: OutcomeDone},
		{name: "first 401", status: http.StatusUnauthorized, want: OutcomeRetry},
		{name: "second 401", status: http.StatusUnauthorized, retried: true, want: OutcomeFailed},
		{name: "403 after retry", status: http.StatusForbidden, retried: true, want: OutcomeDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.status, tt.retried))
		})
	}
}

// Logged in as alice with A1/R1, the server rejects A1, accepts R1 for A2, and
// then serves the feed. The refresh happens once and the feed is requested twice.
func TestPipelineRefreshesOnceAndRetries(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	var refreshBody map[string]string
	h.api.handle("POST /api/token/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, aliceTokenBody)
	})
	h.api.handle("POST /api/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&refreshBody))
		writeJSON(w, http.StatusOK, `{"access":"A2"}`)
	})
	h.api.handle("GET /api/posts/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer A2" {
			writeJSON(w, http.StatusUnauthorized, `{"detail":"Given token not valid for any token type"}`)
			return
		}
		writeJSON(w, http.StatusOK, postsBody)
	})

	_, err := h.session.Login(context.Background(), domain.LoginCredentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	page, err := h.client.ListPosts(context.Background(), domain.FeedQuery{View: domain.FeedViewHome, Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "hello", page.Items[0].Content)

	assert.Len(t, h.api.callsTo(http.MethodPost, "/api/token/refresh/"), 1)
	feedCalls := h.api.callsTo(http.MethodGet, "/api/posts/")
	require.Len(t, feedCalls, 2)
	assert.Equal(t, "Bearer A1", feedCalls[0].Authorization)
	assert.Equal(t, "Bearer A2", feedCalls[1].Authorization)
	assert.Equal(t, "R1", refreshBody["refresh"])

	pair, err := h.credentials.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CredentialPair{Access: "A2", Refresh: "R1"}, pair)
	assert.True(t, h.session.IsAuthenticated())
	assert.Equal(t, 0, h.navigator.redirects())
}

func TestPipelineDoubleUnauthorizedTearsDownOnce(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.handle("POST /api/token/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, aliceTokenBody)
	})
	h.api.handle("POST /api/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"access":"A2"}`)
	})
	h.api.handle("GET /api/posts/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Authentication credentials were not provided."}`)
	})

	_, err := h.session.Login(context.Background(), domain.LoginCredentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = h.client.ListPosts(context.Background(), domain.FeedQuery{View: domain.FeedViewHome})

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, 1, h.navigator.redirects())
	assert.Len(t, h.api.callsTo(http.MethodGet, "/api/posts/"), 2)
	assert.Len(t, h.api.callsTo(http.MethodPost, "/api/token/refresh/"), 1)
	assert.Equal(t, domain.EmptySession(), h.session.Session())

	_, err = h.credentials.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCredentialsNotFound)
}

func TestPipelineFailedRefreshTearsDownWithoutRetry(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.handle("POST /api/token/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, aliceTokenBody)
	})
	h.api.handle("POST /api/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Token is invalid or expired","code":"token_not_valid"}`)
	})
	h.api.handle("POST /api/posts/1/like/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Given token not valid for any token type"}`)
	})

	_, err := h.session.Login(context.Background(), domain.LoginCredentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = h.client.ToggleLike(context.Background(), 1)

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Len(t, h.api.callsTo(http.MethodPost, "/api/posts/1/like/"), 1, "stale access credential must not be reused")
	assert.Equal(t, 1, h.navigator.redirects())
	assert.False(t, h.session.IsAuthenticated())
}

func TestPipelineWithoutRefreshCredentialFails(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.handle("GET /api/users/", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Authentication credentials were not provided."}`)
	})

	_, err := h.client.ListUsers(context.Background())

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	require.ErrorIs(t, err, errNoRefreshCredential)
	assert.Empty(t, h.api.callsTo(http.MethodPost, "/api/token/refresh/"))
	assert.Equal(t, 1, h.navigator.redirects())
}

func TestPipelineDoesNotRetryOtherStatuses(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.handle("DELETE /api/posts/7/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"detail":"You do not have permission to perform this action."}`)
	})

	err := h.client.DeletePost(context.Background(), 7)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "You do not have permission to perform this action.", apiErr.Detail)
	assert.Len(t, h.api.callsTo(http.MethodDelete, "/api/posts/7/"), 1)
	assert.Empty(t, h.api.callsTo(http.MethodPost, "/api/token/refresh/"))
	assert.Equal(t, 0, h.navigator.redirects())
}

func TestPipelineNetworkFailureIsNotRetried(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.server.Close()

	_, err := h.client.ListUsers(context.Background())

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "GET users/", netErr.Op)
	assert.Equal(t, 0, h.navigator.redirects())
}

func TestPipelinePublicRequestBypassesRefresh(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.handle("POST /api/token/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"No active account found with the given credentials"}`)
	})

	_, err := h.session.Login(context.Background(), domain.LoginCredentials{Username: "alice", Password: "bad"})

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "No active account found with the given credentials", authErr.Message)
	assert.Empty(t, h.api.callsTo(http.MethodPost, "/api/token/refresh/"))
	assert.Equal(t, 0, h.navigator.redirects())
}

func TestPipelineSetsRequestHeaders(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.handle("GET /api/users/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	_, err := h.client.ListUsers(context.Background())
	require.NoError(t, err)

	calls := h.api.callsTo(http.MethodGet, "/api/users/")
	require.Len(t, calls, 1)
	_, err = uuid.Parse(calls[0].RequestID)
	assert.NoError(t, err)
	assert.Equal(t, "dc/test", calls[0].UserAgent)
}

type blockingRefresher struct {
	calls   atomic.Int32
	release chan struct{}
}

func (r *blockingRefresher) RefreshAccess(context.Context, string) (string, error) {
	r.calls.Add(1)
	<-r.release
	return "A2", nil
}

func TestPipelineCoalescesConcurrentRefreshes(t *testing.T) {
	t.Parallel()

	creds := portmocks.NewMockCredentialStore(t)
	creds.EXPECT().Load(mock.Anything).Return(domain.CredentialPair{Access: "A1", Refresh: "R1"}, nil)
	creds.EXPECT().ReplaceAccess(mock.Anything, "A2").Return(nil).Once()

	refresher := &blockingRefresher{release: make(chan struct{})}
	pipeline := NewPipeline(nil, creds, refresher, nil, nil, zerolog.Nop())

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- pipeline.refresh(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return refresher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(refresher.release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestPipelineTeardownSurvivesLogoutFailure(t *testing.T) {
	t.Parallel()

	stub := newStubAPI(t)
	stub.handle("GET /api/users/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{}`)
	})
	transport, err := NewTransport(Config{BaseURL: stub.baseURL()}, zerolog.Nop())
	require.NoError(t, err)

	creds := portmocks.NewMockCredentialStore(t)
	creds.EXPECT().Load(mock.Anything).Return(domain.CredentialPair{}, domain.ErrCredentialsNotFound)
	navigator := portmocks.NewMockNavigator(t)
	navigator.EXPECT().RedirectToLogin(mock.Anything, mock.Anything).Return().Once()

	pipeline := NewPipeline(transport, creds, nil, failingTerminator{}, navigator, zerolog.Nop())

	_, err = pipeline.Do(context.Background(), Request{Method: http.MethodGet, Path: "users/"})
	require.ErrorIs(t, err, domain.ErrSessionExpired)
}

type failingTerminator struct{}

func (failingTerminator) Logout(context.Context) error {
	return errors.New("keyring locked")
}

func TestPipelineWithheldCredentialKeepsSession(t *testing.T) {
	t.Parallel()

	var sent int
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		sent++
		return &http.Response{StatusCode: http.StatusUnauthorized, Body: http.NoBody, Header: http.Header{}}, nil
	})}
	transport, err := NewTransport(Config{BaseURL: "https://devconnect.example/api/", HTTPClient: client}, zerolog.Nop())
	require.NoError(t, err)

	// Only the access credential is read; the session is never refreshed or torn down.
	creds := portmocks.NewMockCredentialStore(t)
	creds.EXPECT().Load(mock.Anything).Return(domain.CredentialPair{Access: "A1", Refresh: "R1"}, nil).Once()
	navigator := portmocks.NewMockNavigator(t)

	pipeline := NewPipeline(transport, creds, nil, nil, navigator, zerolog.Nop())

	_, err = pipeline.Do(context.Background(), Request{Method: http.MethodGet, Path: "http://devconnect.example/api/posts/"})
	require.ErrorIs(t, err, errCredentialWithheld)
	assert.NotErrorIs(t, err, domain.ErrSessionExpired)
	assert.Zero(t, sent)
}
