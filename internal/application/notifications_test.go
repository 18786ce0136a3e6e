package application

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationCenterKeepsInsertionOrderAndRemovesByID(t *testing.T) {
	t.Parallel()

	center := NewNotificationCenter()
	first := center.Success("Welcome back!")
	second := center.Error("Failed to load posts")
	third := center.Success("Post created successfully!")

	_, err := uuid.Parse(first.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	assert.True(t, center.Remove(second.ID))
	assert.False(t, center.Remove(second.ID))

	got := center.List()
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, third, got[1])
}

func TestNotificationCenterReportMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "session expired", err: fmt.Errorf("like post: %w", domain.ErrSessionExpired), want: sessionExpiredMessage},
		{name: "auth error", err: domain.NewAuthError(""), want: "Login failed"},
		{name: "single field", err: domain.NewPost{}.Validate(), want: "Please add either text or an image"},
		{name: "api detail", err: &domain.APIError{StatusCode: 403, Detail: "You do not have permission"}, want: "You do not have permission"},
		{name: "network", err: &domain.NetworkError{Op: "GET /posts/", Err: errors.New("refused")}, want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := NewNotificationCenter()
			center.Report(tt.err, "fallback")

			got := center.List()
			require.Len(t, got, 1)
			assert.Equal(t, domain.NotificationError, got[0].Type)
			assert.Equal(t, tt.want, got[0].Message)
		})
	}
}

func TestNotificationCenterReportIgnoresNil(t *testing.T) {
	t.Parallel()

	center := NewNotificationCenter()
	center.Report(nil, "fallback")

	assert.Empty(t, center.List())
}
