package application

import (
	"context"
	"testing"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoggedInSession(t *testing.T, user domain.User) *SessionStore {
	t.Helper()

	store := NewSessionStore(&fakeIssuer{grant: domain.TokenGrant{Credentials: domain.CredentialPair{Access: "A1", Refresh: "R1"}, User: user}}, newFakeCredentials(), zerolog.Nop())
	_, err := store.Login(context.Background(), domain.LoginCredentials{Username: user.Username, Password: "pw"})
	require.NoError(t, err)
	return store
}

func TestDirectoryToggleFollowFlipsLocally(t *testing.T) {
	users := mocks.NewMockUserAPI(t)
	notes := NewNotificationCenter()
	dir := NewDirectory(users, mocks.NewMockRegistrar(t), newLoggedInSession(t, alice), notes)

	users.EXPECT().ListUsers(mockAnyContext()).Return([]domain.User{{ID: 2, Username: "bob"}}, nil)
	users.EXPECT().ToggleFollow(mockAnyContext(), domain.UserID(2)).Return(nil).Twice()

	_, err := dir.List(context.Background())
	require.NoError(t, err)

	followed, err := dir.ToggleFollow(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, followed)
	assert.True(t, dir.Users()[0].IsFollowed)

	followed, err = dir.ToggleFollow(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, followed)
	assert.Equal(t, "Successfully unfollowed user", notes.List()[1].Message)
}

func TestDirectoryUpdateProfileMergesIntoSession(t *testing.T) {
	users := mocks.NewMockUserAPI(t)
	session := newLoggedInSession(t, alice)
	dir := NewDirectory(users, mocks.NewMockRegistrar(t), session, NewNotificationCenter())

	update := domain.ProfileUpdate{Bio: "x", Location: "Lyon"}
	users.EXPECT().UpdateProfile(mockAnyContext(), update).
		Return(domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Bio: "x", Location: "Lyon"}, nil)

	merged, err := dir.UpdateProfile(context.Background(), update)
	require.NoError(t, err)

	assert.Equal(t, "x", merged.Bio)
	assert.Equal(t, "Lyon", merged.Location)
	assert.Equal(t, "alice@example.com", merged.Email)
	assert.Equal(t, merged, *session.Session().User)
}

func TestDirectoryUpdateProfileKeepsFieldsClearedByServer(t *testing.T) {
	users := mocks.NewMockUserAPI(t)
	session := newLoggedInSession(t, domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Bio: "y", Location: "Paris"})
	dir := NewDirectory(users, mocks.NewMockRegistrar(t), session, NewNotificationCenter())

	update := domain.ProfileUpdate{Bio: "x"}
	users.EXPECT().UpdateProfile(mockAnyContext(), update).
		Return(domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Bio: "x"}, nil)

	merged, err := dir.UpdateProfile(context.Background(), update)
	require.NoError(t, err)

	assert.Empty(t, merged.Location)
	assert.Empty(t, session.Session().User.Location)
}

func TestDirectoryUpdateProfileRejectsBadBirthDate(t *testing.T) {
	users := mocks.NewMockUserAPI(t)
	dir := NewDirectory(users, mocks.NewMockRegistrar(t), newLoggedInSession(t, alice), NewNotificationCenter())

	_, err := dir.UpdateProfile(context.Background(), domain.ProfileUpdate{BirthDate: "01/02/1990"})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "birth_date", validationErr.Fields[0].Field)
}

func TestDirectoryUpdateProfileRequiresSession(t *testing.T) {
	session := NewSessionStore(&fakeIssuer{}, newFakeCredentials(), zerolog.Nop())
	dir := NewDirectory(mocks.NewMockUserAPI(t), mocks.NewMockRegistrar(t), session, NewNotificationCenter())

	_, err := dir.UpdateProfile(context.Background(), domain.ProfileUpdate{Bio: "x"})

	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestDirectoryRegisterValidatesLocally(t *testing.T) {
	tests := []struct {
		name         string
		registration domain.Registration
		field        string
	}{
		{
			name:         "bad email",
			registration: domain.Registration{Username: "bob", Email: "bob", Password: "password1", ConfirmPassword: "password1"},
			field:        "email",
		},
		{
			name:         "mismatched confirmation",
			registration: domain.Registration{Username: "bob", Email: "bob@example.com", Password: "password1", ConfirmPassword: "password2"},
			field:        "confirm_password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registrar := mocks.NewMockRegistrar(t)
			dir := NewDirectory(mocks.NewMockUserAPI(t), registrar, NewSessionStore(&fakeIssuer{}, newFakeCredentials(), zerolog.Nop()), NewNotificationCenter())

			_, err := dir.Register(context.Background(), tt.registration)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Fields[0].Field)
			registrar.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestDirectoryRegisterSuccess(t *testing.T) {
	registrar := mocks.NewMockRegistrar(t)
	notes := NewNotificationCenter()
	dir := NewDirectory(mocks.NewMockUserAPI(t), registrar, NewSessionStore(&fakeIssuer{}, newFakeCredentials(), zerolog.Nop()), notes)

	registration := domain.Registration{Username: "bob", Email: "bob@example.com", Password: "password1", ConfirmPassword: "password1"}
	registrar.EXPECT().Register(mockAnyContext(), registration).Return(domain.User{ID: 2, Username: "bob"}, nil)

	user, err := dir.Register(context.Background(), registration)
	require.NoError(t, err)

	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "Account created successfully! Please login.", notes.List()[0].Message)
}
