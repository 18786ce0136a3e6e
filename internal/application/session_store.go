package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports"
	"github.com/rs/zerolog"
)

// SessionStore owns the current identity. Credentials live in the CredentialStore and
// are only reachable through AccessToken.
type SessionStore struct {
	issuer      ports.TokenIssuer
	credentials ports.CredentialStore
	logger      zerolog.Logger

	mu      sync.RWMutex
	session domain.Session
}

var _ ports.SessionTerminator = (*SessionStore)(nil)

func NewSessionStore(issuer ports.TokenIssuer, credentials ports.CredentialStore, logger zerolog.Logger) *SessionStore {
	return &SessionStore{
		issuer:      issuer,
		credentials: credentials,
		logger:      logger.With().Str("component", "session").Logger(),
		session:     domain.EmptySession(),
	}
}

func (s *SessionStore) Login(ctx context.Context, credentials domain.LoginCredentials) (domain.Session, error) {
	if err := validateInput(credentials); err != nil {
		return domain.Session{}, err
	}

	grant, err := s.issuer.IssueToken(ctx, credentials)
	if err != nil {
		s.logger.Debug().Err(err).Str("username", credentials.Username).Msg("token issue rejected")
		return domain.Session{}, fmt.Errorf("issue token: %w", err)
	}

	if err := s.credentials.Save(ctx, grant.Credentials); err != nil {
		return domain.Session{}, fmt.Errorf("store credentials: %w", err)
	}

	user := grant.User
	next := domain.Session{User: &user, IsAuthenticated: true}

	s.mu.Lock()
	s.session = next
	s.mu.Unlock()

	s.logger.Info().Int64("user_id", int64(user.ID)).Str("username", user.Username).Msg("logged in")
	return next.Clone(), nil
}

// Logout resets the identity before touching storage, so the in-memory session is
// empty even when clearing the stored credentials fails.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	wasAuthenticated := s.session.IsAuthenticated
	s.session = domain.EmptySession()
	s.mu.Unlock()

	if err := s.credentials.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}

	if wasAuthenticated {
		s.logger.Info().Msg("logged out")
	}
	return nil
}

func (s *SessionStore) UpdateUser(patch domain.UserPatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return domain.User{}, fmt.Errorf("update user: %w", domain.ErrInvalidState)
	}

	merged := patch.Apply(*s.session.User)
	s.session.User = &merged
	return merged, nil
}

// AccessToken returns the stored access credential, or "" when there is none.
func (s *SessionStore) AccessToken(ctx context.Context) string {
	pair, err := s.credentials.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCredentialsNotFound) {
			s.logger.Warn().Err(err).Msg("read access credential")
		}
		return ""
	}
	return pair.Access
}

func (s *SessionStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Clone()
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated
}

// Resume rebuilds the identity of a fresh process from the stored credentials.
// It is a no-op when the session is already populated.
func (s *SessionStore) Resume(ctx context.Context, resolver ports.CurrentUserResolver) (domain.Session, error) {
	if current := s.Session(); current.IsAuthenticated {
		return current, nil
	}

	if _, err := s.credentials.Load(ctx); err != nil {
		return domain.Session{}, fmt.Errorf("load credentials: %w", err)
	}

	user, err := resolver.CurrentUser(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("resolve current user: %w", err)
	}

	next := domain.Session{User: &user, IsAuthenticated: true}

	s.mu.Lock()
	s.session = next
	s.mu.Unlock()

	s.logger.Debug().Int64("user_id", int64(user.ID)).Msg("session resumed")
	return next.Clone(), nil
}
