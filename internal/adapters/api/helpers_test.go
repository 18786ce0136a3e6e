package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bnema/devconnect-cli/internal/adapters/credentials"
	filestore "github.com/bnema/devconnect-cli/internal/adapters/secrets/file"
	"github.com/bnema/devconnect-cli/internal/application"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	UserAgent     string
}

// stubAPI is an httptest server whose routes are plain handler funcs keyed by
// "METHOD /path".
type stubAPI struct {
	t      *testing.T
	server *httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []recordedCall
}

func newStubAPI(t *testing.T) *stubAPI {
	t.Helper()

	stub := &stubAPI{t: t, routes: make(map[string]http.HandlerFunc)}
	stub.server = httptest.NewServer(http.HandlerFunc(stub.serve))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *stubAPI) handle(route string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[route] = handler
}

func (s *stubAPI) serve(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path

	s.mu.Lock()
	s.calls = append(s.calls, recordedCall{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get(headerRequestID),
		UserAgent:     r.Header.Get("User-Agent"),
	})
	handler, ok := s.routes[route]
	s.mu.Unlock()

	if !ok {
		http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
		return
	}
	handler(w, r)
}

func (s *stubAPI) baseURL() string {
	return s.server.URL + "/api/"
}

func (s *stubAPI) callsTo(method, path string) []recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []recordedCall
	for _, call := range s.calls {
		if call.Method == method && call.Path == path {
			out = append(out, call)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

type recordingNavigator struct {
	mu     sync.Mutex
	causes []error
}

func (n *recordingNavigator) RedirectToLogin(_ context.Context, cause error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.causes = append(n.causes, cause)
}

func (n *recordingNavigator) redirects() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.causes)
}

// harness wires the real session store, credential store and pipeline against a
// stub API, the same way the CLI composition root does.
type harness struct {
	api         *stubAPI
	credentials *credentials.Store
	session     *application.SessionStore
	navigator   *recordingNavigator
	auth        *AuthAPI
	pipeline    *Pipeline
	client      *Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	stub := newStubAPI(t)
	transport, err := NewTransport(Config{
		BaseURL:   stub.baseURL(),
		Timeout:   5 * time.Second,
		UserAgent: "dc/test",
	}, zerolog.Nop())
	require.NoError(t, err)

	creds := credentials.NewStore(filestore.NewStore(t.TempDir()), "default", zerolog.Nop())
	auth := NewAuthAPI(transport)
	session := application.NewSessionStore(auth, creds, zerolog.Nop())
	navigator := &recordingNavigator{}
	pipeline := NewPipeline(transport, creds, auth, session, navigator, zerolog.Nop())

	return &harness{
		api:         stub,
		credentials: creds,
		session:     session,
		navigator:   navigator,
		auth:        auth,
		pipeline:    pipeline,
		client:      NewClient(pipeline, creds),
	}
}

const aliceTokenBody = `{"access":"A1","refresh":"R1","user":{"id":1,"username":"alice","email":"alice@example.com","bio":"y"}}`

const postsBody = `[{"id":1,"content":"hello","image":null,"author":{"id":1,"username":"alice","profile_picture":null},"created_at":"2024-05-01T10:00:00Z","updated_at":"2024-05-01T10:00:00Z","likes_count":2,"comments_count":0,"is_liked":false}]`
