package session

import (
	"errors"

	"bluewave/internal/domain"
)

// ErrInvalidCredentials is returned when a login attempt is rejected.
// It is an authentication outcome, not a fatal condition.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator decides whether a credential pair is accepted and, if
// so, which role and display name the session gets. Injecting the
// policy keeps the demo credential swappable without touching the
// session lifecycle.
type Authenticator interface {
	Authenticate(username, password string) (domain.Role, string, error)
}

// FixedCredential is the demo policy: one shared password for every
// account. The username "admin" maps to the admin role; any other
// username logs in as a cashier. This mapping is a preserved design
// property of the demo, not a placeholder.
type FixedCredential struct {
	Password string
}

// DemoPassword is the demo dataset's shared credential.
const DemoPassword = "password123"

// Authenticate implements Authenticator.
func (f FixedCredential) Authenticate(username, password string) (domain.Role, string, error) {
	if username == "" || password != f.Password {
		return "", "", ErrInvalidCredentials
	}
	if username == "admin" {
		return domain.RoleAdmin, "System Administrator", nil
	}
	return domain.RoleCashier, "John Cashier", nil
}
