package ports

import (
	"context"

	"github.com/bnema/devconnect-cli/internal/domain"
)

type TokenIssuer interface {
	IssueToken(ctx context.Context, credentials domain.LoginCredentials) (domain.TokenGrant, error)
}

type TokenRefresher interface {
	RefreshAccess(ctx context.Context, refresh string) (string, error)
}

// SessionTerminator tears the session down after an unrecoverable refresh failure.
type SessionTerminator interface {
	Logout(ctx context.Context) error
}

// Navigator sends the user back to the login entry point.
type Navigator interface {
	RedirectToLogin(ctx context.Context, cause error)
}

type CurrentUserResolver interface {
	CurrentUser(ctx context.Context) (domain.User, error)
}
