package application

import (
	"context"
	"sync"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

type fakeIssuer struct {
	grant domain.TokenGrant
	err   error
}

func (f *fakeIssuer) IssueToken(context.Context, domain.LoginCredentials) (domain.TokenGrant, error) {
	return f.grant, f.err
}

type fakeCredentials struct {
	mu       sync.Mutex
	pair     domain.CredentialPair
	clears   int
	clearErr error
}

func newFakeCredentials() *fakeCredentials {
	return &fakeCredentials{}
}

func (f *fakeCredentials) Load(context.Context) (domain.CredentialPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pair.IsZero() {
		return domain.CredentialPair{}, domain.ErrCredentialsNotFound
	}
	return f.pair, nil
}

func (f *fakeCredentials) Save(_ context.Context, pair domain.CredentialPair) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pair = pair
	return nil
}

func (f *fakeCredentials) ReplaceAccess(_ context.Context, access string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pair.Access = access
	return nil
}

func (f *fakeCredentials) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.pair = domain.CredentialPair{}
	return nil
}

func mockAnyContext() interface{} {
	return mock.Anything
}
