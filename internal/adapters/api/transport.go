package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/devconnect-cli/internal/adapters/credentials"
	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second

	headerRequestID = "X-Request-ID"
)

var (
	// ErrInsecureBaseURL rejects a plain http base URL on a non-loopback host unless
	// api.allow_insecure_http is set.
	ErrInsecureBaseURL = errors.New("api base url must use https for non-loopback hosts (set api.allow_insecure_http to override)")

	errCredentialWithheld = errors.New("refusing to send credential over insecure http")
)

type Config struct {
	BaseURL           string
	Timeout           time.Duration
	UserAgent         string
	AllowInsecureHTTP bool
	HTTPClient        *http.Client
}

// Request is one API call. Body is kept as bytes so the call can be re-issued after
// a credential refresh.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        []byte
	ContentType string
	// Public requests never carry a credential and skip the refresh machinery.
	Public bool
}

func (r Request) op() string {
	return r.Method + " " + r.Path
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r Response) ok() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Transport sends single HTTP attempts against the API base URL.
type Transport struct {
	base          *url.URL
	client        *http.Client
	timeout       time.Duration
	userAgent     string
	allowInsecure bool
	logger        zerolog.Logger
}

func NewTransport(cfg Config, logger zerolog.Logger) (*Transport, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if !credentials.Attachable(base, cfg.AllowInsecureHTTP) {
		return nil, fmt.Errorf("%w: %s", ErrInsecureBaseURL, base.Redacted())
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Transport{
		base:          base,
		client:        client,
		timeout:       timeout,
		userAgent:     cfg.UserAgent,
		allowInsecure: cfg.AllowInsecureHTTP,
		logger:        logger.With().Str("component", "transport").Logger(),
	}, nil
}

// Send performs one attempt. access is attached as a bearer credential when it is
// non-empty. A target that may not receive Secure credentials fails locally before
// anything is sent. Only local and transport failures are returned as errors; HTTP
// statuses are left to the caller.
func (t *Transport) Send(ctx context.Context, req Request, access string) (Response, error) {
	target, err := t.resolve(req)
	if err != nil {
		return Response{}, err
	}

	attemptCtx, cancel := t.requestContext(ctx)
	defer cancel()

	if access != "" && !req.Public && !credentials.Attachable(target, t.allowInsecure) {
		t.logger.Warn().Str("host", target.Host).Msg("withholding credential from insecure http target")
		return Response{}, fmt.Errorf("%s %s: %w", req.op(), target.Host, errCredentialWithheld)
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(attemptCtx, req.Method, target.String(), body)
	if err != nil {
		return Response{}, fmt.Errorf("create %s request: %w", req.op(), err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set(headerRequestID, requestID)
	httpReq.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if access != "" && !req.Public {
		httpReq.Header.Set("Authorization", "Bearer "+access)
	}

	started := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return Response{}, &domain.NetworkError{Op: req.op(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, &domain.NetworkError{Op: req.op(), Err: fmt.Errorf("read response body: %w", err)}
	}

	t.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("api call")

	return Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (t *Transport) resolve(req Request) (*url.URL, error) {
	path := strings.TrimPrefix(req.Path, "/")
	if path == "" {
		return nil, errors.New("api path is required")
	}

	endpoint, err := t.base.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse api path: %w", err)
	}
	if len(req.Query) > 0 {
		endpoint.RawQuery = req.Query.Encode()
	}
	return endpoint, nil
}

func (t *Transport) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < t.timeout {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, t.timeout)
}

func parseBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("api base url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	return parsed, nil
}
