// Package session tracks the active user: a two-state lifecycle from
// LoggedOut to LoggedIn and back, persisted under its own key so the
// session survives process restarts the way it survives page reloads
// in the original demo.
package session

import (
	"errors"

	"github.com/google/uuid"

	"bluewave/internal/domain"
	"bluewave/internal/persist"
)

// ErrNotLoggedIn is returned by operations that need an active session.
var ErrNotLoggedIn = errors.New("not logged in")

// Manager owns the single active session.
type Manager struct {
	repo    persist.Repository
	auth    Authenticator
	current *domain.Session
}

// NewManager restores any persisted session and returns a manager
// using the given authentication policy. A corrupt persisted session
// is discarded rather than treated as fatal.
func NewManager(repo persist.Repository, auth Authenticator) (*Manager, error) {
	m := &Manager{repo: repo, auth: auth}

	current, err := repo.LoadSession()
	switch {
	case err == nil:
		m.current = current
	case errors.Is(err, persist.ErrNotFound):
		// logged out
	case domain.IsPersistence(err):
		_ = repo.ClearSession()
	default:
		return nil, err
	}
	return m, nil
}

// Current returns the active session, or nil when logged out.
func (m *Manager) Current() *domain.Session { return m.current }

// Login authenticates the credentials and establishes the session.
// A failed attempt returns ErrInvalidCredentials and leaves any
// existing session untouched.
func (m *Manager) Login(username, password string) (*domain.Session, error) {
	role, fullName, err := m.auth.Authenticate(username, password)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		Username: username,
		Role:     role,
		FullName: fullName,
		Token:    uuid.NewString(),
	}
	if err := m.repo.SaveSession(session); err != nil {
		return nil, err
	}
	m.current = session
	return session, nil
}

// Logout clears the session back to logged out. Domain data is not
// touched.
func (m *Manager) Logout() error {
	if m.current == nil {
		return ErrNotLoggedIn
	}
	if err := m.repo.ClearSession(); err != nil {
		return err
	}
	m.current = nil
	return nil
}
