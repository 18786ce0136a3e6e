package ports

import "context"

// SecretStore is a key/value backend for sensitive values. Get returns an error
// wrapping domain.ErrSecretNotFound when the key is absent.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
