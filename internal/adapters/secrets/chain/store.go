package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/devconnect-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/devconnect-cli/internal/adapters/secrets/pass"
	"github.com/bnema/devconnect-cli/internal/ports"
	"github.com/rs/zerolog"
)

// Backend names a secret storage strategy selectable from configuration.
type Backend string

const (
	BackendChain Backend = "chain"
	BackendFile  Backend = "file"
	BackendPass  Backend = "pass"
)

// Store reads and writes through primary, falling back when primary fails. Deletes
// reach both backends so a logout leaves nothing behind.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	logger   zerolog.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, logger zerolog.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback, logger: logger}, nil
}

// Open builds the store for the configured backend. fileRoot is only used by the
// file backend.
func Open(backend Backend, fileRoot string, logger zerolog.Logger) (ports.SecretStore, error) {
	switch backend {
	case BackendFile:
		return filestore.NewStore(fileRoot), nil
	case BackendPass:
		return passstore.NewStore(), nil
	case BackendChain, "":
		return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot), logger)
	default:
		return nil, fmt.Errorf("unknown credentials backend %q", backend)
	}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	s.logger.Debug().Err(err).Str("key", key).Msg("primary secret backend put failed, using fallback")
	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}
	if err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("primary secret backend delete failed")
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback backend delete failed: %w", fallbackErr)
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
