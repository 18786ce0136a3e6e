package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

type callState int

const (
	stateIssued callState = iota
	stateRefreshing
	stateRetried
	stateDone
	stateFailed
)

func (s callState) String() string {
	switch s {
	case stateIssued:
		return "issued"
	case stateRefreshing:
		return "refreshing"
	case stateRetried:
		return "retried"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome classifies one HTTP attempt.
type Outcome int

const (
	OutcomeDone Outcome = iota
	OutcomeRetry
	OutcomeFailed
)

// Classify decides what follows an attempt that came back with status. A 401 earns
// one refresh; a second 401 in the same call is terminal.
func Classify(status int, retried bool) Outcome {
	if status != http.StatusUnauthorized {
		return OutcomeDone
	}
	if retried {
		return OutcomeFailed
	}
	return OutcomeRetry
}

var (
	errNoRefreshCredential = errors.New("no refresh credential stored")
	errRejectedAfterRetry  = errors.New("request rejected after credential refresh")
)

const refreshFlightKey = "refresh"

// Pipeline sends authenticated requests. On a 401 it refreshes the access credential
// once and re-issues the request; when that is not possible it logs the session out
// and redirects to login.
type Pipeline struct {
	transport   *Transport
	credentials ports.CredentialStore
	refresher   ports.TokenRefresher
	terminator  ports.SessionTerminator
	navigator   ports.Navigator
	logger      zerolog.Logger

	refreshes singleflight.Group
}

func NewPipeline(
	transport *Transport,
	credentials ports.CredentialStore,
	refresher ports.TokenRefresher,
	terminator ports.SessionTerminator,
	navigator ports.Navigator,
	logger zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		transport:   transport,
		credentials: credentials,
		refresher:   refresher,
		terminator:  terminator,
		navigator:   navigator,
		logger:      logger.With().Str("component", "pipeline").Logger(),
	}
}

// Do runs req through the state machine. Success returns the response unchanged.
// Non-401 statuses become *domain.APIError, transport failures *domain.NetworkError,
// and an exhausted refresh domain.ErrSessionExpired.
func (p *Pipeline) Do(ctx context.Context, req Request) (Response, error) {
	if req.Public {
		resp, err := p.transport.Send(ctx, req, "")
		if err != nil {
			return Response{}, err
		}
		return resp, statusError(resp)
	}

	var (
		state   = stateIssued
		retried bool
		resp    Response
		cause   error
	)

	for {
		p.logger.Trace().Stringer("state", state).Str("op", req.op()).Msg("pipeline transition")

		switch state {
		case stateIssued, stateRetried:
			attempt, err := p.transport.Send(ctx, req, p.accessToken(ctx))
			if err != nil {
				return Response{}, err
			}
			resp = attempt

			switch Classify(attempt.StatusCode, retried) {
			case OutcomeDone:
				state = stateDone
			case OutcomeRetry:
				state = stateRefreshing
			case OutcomeFailed:
				cause = errRejectedAfterRetry
				state = stateFailed
			}

		case stateRefreshing:
			if err := p.refresh(ctx); err != nil {
				cause = err
				state = stateFailed
				continue
			}
			retried = true
			state = stateRetried

		case stateDone:
			return resp, statusError(resp)

		case stateFailed:
			return Response{}, p.fail(ctx, req, cause)
		}
	}
}

func (p *Pipeline) accessToken(ctx context.Context) string {
	pair, err := p.credentials.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCredentialsNotFound) {
			p.logger.Warn().Err(err).Msg("read access credential")
		}
		return ""
	}
	return pair.Access
}

// refresh exchanges the stored refresh credential for a new access credential.
// Concurrent callers share one exchange.
func (p *Pipeline) refresh(ctx context.Context) error {
	_, err, shared := p.refreshes.Do(refreshFlightKey, func() (any, error) {
		pair, err := p.credentials.Load(ctx)
		if err != nil && !errors.Is(err, domain.ErrCredentialsNotFound) {
			return nil, fmt.Errorf("load refresh credential: %w", err)
		}
		if pair.Refresh == "" {
			return nil, errNoRefreshCredential
		}

		access, err := p.refresher.RefreshAccess(ctx, pair.Refresh)
		if err != nil {
			return nil, fmt.Errorf("refresh access credential: %w", err)
		}
		if err := p.credentials.ReplaceAccess(ctx, access); err != nil {
			return nil, fmt.Errorf("store refreshed access credential: %w", err)
		}
		return nil, nil
	})

	p.logger.Debug().Bool("shared", shared).Err(err).Msg("access credential refresh")
	return err
}

func (p *Pipeline) fail(ctx context.Context, req Request, cause error) error {
	p.logger.Info().Err(cause).Str("op", req.op()).Msg("session expired")

	if err := p.terminator.Logout(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("tear down session")
	}
	p.navigator.RedirectToLogin(ctx, cause)

	return fmt.Errorf("%s: %w: %w", req.op(), domain.ErrSessionExpired, cause)
}
