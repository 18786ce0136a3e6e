package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports"
)

// Directory covers the user list, follow relationships, profile edits and
// registration.
type Directory struct {
	users     ports.UserAPI
	registrar ports.Registrar
	session   *SessionStore
	notes     *NotificationCenter

	mu    sync.Mutex
	known []domain.User
}

func NewDirectory(users ports.UserAPI, registrar ports.Registrar, session *SessionStore, notes *NotificationCenter) *Directory {
	return &Directory{
		users:     users,
		registrar: registrar,
		session:   session,
		notes:     notes,
	}
}

func (d *Directory) List(ctx context.Context) ([]domain.User, error) {
	users, err := d.users.ListUsers(ctx)
	if err != nil {
		d.notes.Report(err, "Failed to load users")
		return nil, fmt.Errorf("list users: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.known = append([]domain.User(nil), users...)
	return d.snapshotLocked(), nil
}

// ToggleFollow flips the follow relationship and mirrors it on the cached list.
// It returns the new follow state.
func (d *Directory) ToggleFollow(ctx context.Context, id domain.UserID) (bool, error) {
	d.mu.Lock()
	wasFollowed := false
	for _, user := range d.known {
		if user.ID == id {
			wasFollowed = user.IsFollowed
		}
	}
	d.mu.Unlock()

	if err := d.users.ToggleFollow(ctx, id); err != nil {
		d.notes.Report(err, "Failed to update follow status")
		return wasFollowed, fmt.Errorf("toggle follow: %w", err)
	}

	d.mu.Lock()
	for i := range d.known {
		if d.known[i].ID == id {
			d.known[i].IsFollowed = !d.known[i].IsFollowed
		}
	}
	d.mu.Unlock()

	if wasFollowed {
		d.notes.Success("Successfully unfollowed user")
	} else {
		d.notes.Success("Successfully followed user")
	}
	return !wasFollowed, nil
}

// UpdateProfile sends the edit and merges the returned record into the session.
func (d *Directory) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	if !d.session.IsAuthenticated() {
		err := fmt.Errorf("update profile: %w", domain.ErrInvalidState)
		d.notes.Report(err, "Failed to update profile")
		return domain.User{}, err
	}
	if err := validateInput(update); err != nil {
		d.notes.Report(err, "Failed to update profile")
		return domain.User{}, err
	}

	updated, err := d.users.UpdateProfile(ctx, update)
	if err != nil {
		d.notes.Report(err, "Failed to update profile")
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}

	merged, err := d.session.UpdateUser(domain.PatchFromUser(updated))
	if err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}

	d.notes.Success("Profile updated successfully!")
	return merged, nil
}

func (d *Directory) Register(ctx context.Context, registration domain.Registration) (domain.User, error) {
	if err := validateInput(registration); err != nil {
		d.notes.Report(err, "Registration failed")
		return domain.User{}, err
	}

	user, err := d.registrar.Register(ctx, registration)
	if err != nil {
		d.notes.Report(err, "Registration failed")
		return domain.User{}, fmt.Errorf("register: %w", err)
	}

	d.notes.Success("Account created successfully! Please login.")
	return user, nil
}

func (d *Directory) Users() []domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Directory) snapshotLocked() []domain.User {
	out := make([]domain.User, len(d.known))
	copy(out, d.known)
	return out
}
