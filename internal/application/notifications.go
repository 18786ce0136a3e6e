package application

import (
	"errors"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/google/uuid"
)

const sessionExpiredMessage = "Your session has expired. Please log in again."

// NotificationCenter is an ordered list of user-facing messages.
type NotificationCenter struct {
	mu       sync.RWMutex
	messages []domain.Notification
	newID    func() string
}

func NewNotificationCenter() *NotificationCenter {
	return &NotificationCenter{newID: uuid.NewString}
}

func (c *NotificationCenter) Add(kind domain.NotificationType, message string) domain.Notification {
	n := domain.Notification{ID: c.newID(), Type: kind, Message: message}

	c.mu.Lock()
	c.messages = append(c.messages, n)
	c.mu.Unlock()

	return n
}

func (c *NotificationCenter) Success(message string) domain.Notification {
	return c.Add(domain.NotificationSuccess, message)
}

func (c *NotificationCenter) Error(message string) domain.Notification {
	return c.Add(domain.NotificationError, message)
}

// Remove drops the notification with the given id. It reports whether one was found.
func (c *NotificationCenter) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.messages {
		if n.ID == id {
			c.messages = append(c.messages[:i:i], c.messages[i+1:]...)
			return true
		}
	}
	return false
}

func (c *NotificationCenter) List() []domain.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Notification, len(c.messages))
	copy(out, c.messages)
	return out
}

// Report pushes an error notification describing err. fallback is used when the
// error carries nothing the user can act on.
func (c *NotificationCenter) Report(err error, fallback string) {
	if err == nil {
		return
	}
	c.Error(describeError(err, fallback))
}

func describeError(err error, fallback string) string {
	var (
		authErr       *domain.AuthError
		validationErr *domain.ValidationError
		apiErr        *domain.APIError
	)

	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		return sessionExpiredMessage
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.As(err, &validationErr):
		parts := make([]string, 0, len(validationErr.Fields))
		for _, field := range validationErr.Fields {
			parts = append(parts, fieldSentence(field))
		}
		return strings.Join(parts, "; ")
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		return apiErr.Detail
	default:
		return fallback
	}
}

// fieldSentence keeps messages that already read as a sentence and prefixes the
// field name to fragments such as "is required".
func fieldSentence(field domain.FieldError) string {
	if r, _ := utf8.DecodeRuneInString(field.Message); unicode.IsUpper(r) || field.Field == "" {
		return field.Message
	}
	return field.Field + " " + field.Message
}
