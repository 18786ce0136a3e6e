package ports

import (
	"context"

	"github.com/bnema/devconnect-cli/internal/domain"
)

type CredentialStore interface {
	// Load returns domain.ErrCredentialsNotFound when nothing is stored.
	Load(ctx context.Context) (domain.CredentialPair, error)
	Save(ctx context.Context, pair domain.CredentialPair) error
	// ReplaceAccess swaps the access credential and keeps the refresh credential.
	ReplaceAccess(ctx context.Context, access string) error
	Clear(ctx context.Context) error
}
