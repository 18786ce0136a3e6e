package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var alice = domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Bio: "y"}

func TestSessionStoreLoginSuccess(t *testing.T) {
	issuer := mocks.NewMockTokenIssuer(t)
	credentials := mocks.NewMockCredentialStore(t)
	store := NewSessionStore(issuer, credentials, zerolog.Nop())

	login := domain.LoginCredentials{Username: "alice", Password: "pw"}
	pair := domain.CredentialPair{Access: "A1", Refresh: "R1"}
	issuer.EXPECT().IssueToken(mockAnyContext(), login).Return(domain.TokenGrant{Credentials: pair, User: alice}, nil)
	credentials.EXPECT().Save(mockAnyContext(), pair).Return(nil)

	session, err := store.Login(context.Background(), login)
	require.NoError(t, err)

	assert.True(t, session.IsAuthenticated)
	require.NotNil(t, session.User)
	assert.Equal(t, alice, *session.User)
	assert.True(t, store.IsAuthenticated())
	assert.NoError(t, store.Session().Validate())
}

func TestSessionStoreLoginRejectedKeepsPriorState(t *testing.T) {
	issuer := mocks.NewMockTokenIssuer(t)
	credentials := mocks.NewMockCredentialStore(t)
	store := NewSessionStore(issuer, credentials, zerolog.Nop())

	issuer.EXPECT().IssueToken(mockAnyContext(), mock.Anything).
		Return(domain.TokenGrant{}, domain.NewAuthError("No active account found with the given credentials"))

	_, err := store.Login(context.Background(), domain.LoginCredentials{Username: "alice", Password: "wrong"})

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "No active account found with the given credentials", authErr.Message)
	assert.Equal(t, domain.EmptySession(), store.Session())
}

func TestSessionStoreLoginStorageFailureKeepsPriorState(t *testing.T) {
	issuer := mocks.NewMockTokenIssuer(t)
	credentials := mocks.NewMockCredentialStore(t)
	store := NewSessionStore(issuer, credentials, zerolog.Nop())

	storageErr := errors.New("disk full")
	issuer.EXPECT().IssueToken(mockAnyContext(), mock.Anything).
		Return(domain.TokenGrant{Credentials: domain.CredentialPair{Access: "A1", Refresh: "R1"}, User: alice}, nil)
	credentials.EXPECT().Save(mockAnyContext(), mock.Anything).Return(storageErr)

	_, err := store.Login(context.Background(), domain.LoginCredentials{Username: "alice", Password: "pw"})

	require.ErrorIs(t, err, storageErr)
	assert.False(t, store.IsAuthenticated())
}

func TestSessionStoreLoginValidatesBeforeCallingServer(t *testing.T) {
	issuer := mocks.NewMockTokenIssuer(t)
	credentials := mocks.NewMockCredentialStore(t)
	store := NewSessionStore(issuer, credentials, zerolog.Nop())

	_, err := store.Login(context.Background(), domain.LoginCredentials{Username: "alice"})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password", validationErr.Fields[0].Field)
	issuer.AssertNotCalled(t, "IssueToken", mock.Anything, mock.Anything)
}

func TestSessionStoreLoginThenLogoutEndsEmpty(t *testing.T) {
	store := NewSessionStore(&fakeIssuer{grant: domain.TokenGrant{Credentials: domain.CredentialPair{Access: "A1", Refresh: "R1"}, User: alice}}, newFakeCredentials(), zerolog.Nop())

	_, err := store.Login(context.Background(), domain.LoginCredentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "A1", store.AccessToken(context.Background()))

	require.NoError(t, store.Logout(context.Background()))

	assert.Equal(t, domain.EmptySession(), store.Session())
	assert.Empty(t, store.AccessToken(context.Background()))
}

func TestSessionStoreLogoutIsIdempotent(t *testing.T) {
	credentials := newFakeCredentials()
	store := NewSessionStore(&fakeIssuer{}, credentials, zerolog.Nop())

	require.NoError(t, store.Logout(context.Background()))
	first := store.Session()
	require.NoError(t, store.Logout(context.Background()))

	assert.Equal(t, first, store.Session())
	assert.Equal(t, 2, credentials.clears)
}

func TestSessionStoreLogoutResetsMemoryWhenStorageFails(t *testing.T) {
	credentials := newFakeCredentials()
	store := NewSessionStore(&fakeIssuer{grant: domain.TokenGrant{Credentials: domain.CredentialPair{Access: "A1", Refresh: "R1"}, User: alice}}, credentials, zerolog.Nop())
	_, err := store.Login(context.Background(), domain.LoginCredentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	credentials.clearErr = errors.New("permission denied")
	err = store.Logout(context.Background())

	require.ErrorIs(t, err, credentials.clearErr)
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Session().User)
}

func TestSessionStoreUpdateUserMergesShallowly(t *testing.T) {
	store := NewSessionStore(&fakeIssuer{grant: domain.TokenGrant{User: domain.User{ID: 1, Username: "a", Bio: "y"}}}, newFakeCredentials(), zerolog.Nop())
	_, err := store.Login(context.Background(), domain.LoginCredentials{Username: "a", Password: "pw"})
	require.NoError(t, err)

	bio := "x"
	merged, err := store.UpdateUser(domain.UserPatch{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, domain.User{ID: 1, Username: "a", Bio: "x"}, merged)
	assert.Equal(t, merged, *store.Session().User)
}

func TestSessionStoreUpdateUserWithoutIdentity(t *testing.T) {
	store := NewSessionStore(&fakeIssuer{}, newFakeCredentials(), zerolog.Nop())

	_, err := store.UpdateUser(domain.UserPatch{})

	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestSessionStoreAccessTokenNeverFails(t *testing.T) {
	credentials := mocks.NewMockCredentialStore(t)
	store := NewSessionStore(&fakeIssuer{}, credentials, zerolog.Nop())

	credentials.EXPECT().Load(mockAnyContext()).Return(domain.CredentialPair{}, errors.New("corrupt record")).Once()
	assert.Empty(t, store.AccessToken(context.Background()))

	credentials.EXPECT().Load(mockAnyContext()).Return(domain.CredentialPair{}, domain.ErrCredentialsNotFound).Once()
	assert.Empty(t, store.AccessToken(context.Background()))
}

func TestSessionStoreResume(t *testing.T) {
	credentials := newFakeCredentials()
	credentials.pair = domain.CredentialPair{Access: "A1", Refresh: "R1"}
	resolver := mocks.NewMockCurrentUserResolver(t)
	store := NewSessionStore(&fakeIssuer{}, credentials, zerolog.Nop())

	resolver.EXPECT().CurrentUser(mockAnyContext()).Return(alice, nil).Once()

	session, err := store.Resume(context.Background(), resolver)
	require.NoError(t, err)
	assert.Equal(t, "alice", session.User.Username)

	again, err := store.Resume(context.Background(), resolver)
	require.NoError(t, err)
	assert.Equal(t, session, again)
}

func TestSessionStoreResumeWithoutCredentials(t *testing.T) {
	resolver := mocks.NewMockCurrentUserResolver(t)
	store := NewSessionStore(&fakeIssuer{}, newFakeCredentials(), zerolog.Nop())

	_, err := store.Resume(context.Background(), resolver)

	require.ErrorIs(t, err, domain.ErrCredentialsNotFound)
	assert.False(t, store.IsAuthenticated())
}
