package credentials

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports"
	"github.com/rs/zerolog"
)

const (
	AccessRecord  = "access_token"
	RefreshRecord = "refresh_token"

	keyNamespace = "devconnect"
)

// Store persists the credential pair as two cookie records in a SecretStore. Every
// record carries Secure, SameSite=Strict and Path=/.
type Store struct {
	secrets ports.SecretStore
	profile string
	logger  zerolog.Logger

	mu sync.Mutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(secrets ports.SecretStore, profile string, logger zerolog.Logger) *Store {
	if profile == "" {
		profile = "default"
	}
	return &Store{
		secrets: secrets,
		profile: profile,
		logger:  logger.With().Str("component", "credentials").Str("profile", profile).Logger(),
	}
}

func (s *Store) Load(ctx context.Context) (domain.CredentialPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	access, err := s.read(ctx, AccessRecord)
	if err != nil {
		return domain.CredentialPair{}, err
	}
	refresh, err := s.read(ctx, RefreshRecord)
	if err != nil {
		return domain.CredentialPair{}, err
	}

	pair := domain.CredentialPair{Access: access, Refresh: refresh}
	if pair.IsZero() {
		return domain.CredentialPair{}, domain.ErrCredentialsNotFound
	}
	return pair, nil
}

// Save writes the refresh record first and removes it again when the access record
// cannot be written, so a half-written pair is never left behind.
func (s *Store) Save(ctx context.Context, pair domain.CredentialPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(ctx, RefreshRecord, pair.Refresh); err != nil {
		return err
	}
	if err := s.write(ctx, AccessRecord, pair.Access); err != nil {
		if rollbackErr := s.secrets.Delete(ctx, s.key(RefreshRecord)); rollbackErr != nil {
			return fmt.Errorf("save credentials and rollback refresh record: %w", errors.Join(err, rollbackErr))
		}
		return err
	}

	s.logger.Debug().Msg("credentials saved")
	return nil
}

func (s *Store) ReplaceAccess(ctx context.Context, access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(ctx, AccessRecord, access); err != nil {
		return err
	}

	s.logger.Debug().Msg("access credential replaced")
	return nil
}

// Clear removes both records. Missing records are not an error.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, name := range []string{AccessRecord, RefreshRecord} {
		if err := s.secrets.Delete(ctx, s.key(name)); err != nil {
			errs = append(errs, fmt.Errorf("delete %s record: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

func (s *Store) key(name string) string {
	return keyNamespace + "/" + s.profile + "/" + name
}

func (s *Store) read(ctx context.Context, name string) (string, error) {
	raw, err := s.secrets.Get(ctx, s.key(name))
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("read %s record: %w", name, err)
	}

	cookie, err := DecodeRecord(name, raw)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

func (s *Store) write(ctx context.Context, name, value string) error {
	if value == "" {
		if err := s.secrets.Delete(ctx, s.key(name)); err != nil {
			return fmt.Errorf("delete %s record: %w", name, err)
		}
		return nil
	}

	if err := s.secrets.Put(ctx, s.key(name), EncodeRecord(name, value)); err != nil {
		return fmt.Errorf("write %s record: %w", name, err)
	}
	return nil
}

// EncodeRecord renders a credential as a Set-Cookie style record.
func EncodeRecord(name, value string) string {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
	return cookie.String()
}

func DecodeRecord(name, raw string) (*http.Cookie, error) {
	cookie, err := http.ParseSetCookie(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s record: %w", name, err)
	}
	if cookie.Name != name {
		return nil, fmt.Errorf("parse %s record: unexpected name %q", name, cookie.Name)
	}
	if !cookie.Secure || cookie.SameSite != http.SameSiteStrictMode || cookie.Path != "/" {
		return nil, fmt.Errorf("parse %s record: missing secure attributes", name)
	}
	return cookie, nil
}

// Attachable reports whether a Secure credential may be sent to target. Loopback
// hosts count as secure, the same way browsers treat localhost.
func Attachable(target *url.URL, allowInsecure bool) bool {
	if allowInsecure || target.Scheme == "https" {
		return true
	}

	host := target.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
