package persist

import (
	"errors"

	"bluewave/internal/domain"
)

// Fixed keys for the two persisted documents.
const (
	StateKey   = "bluewave_demo_data"
	SessionKey = "bluewave_current_user"
)

// ErrNotFound is returned when a document does not exist under its key.
var ErrNotFound = errors.New("document not found")

// Repository is the persistence port. Implementations store whole
// serialized documents under fixed keys; callers treat every save as a
// full-state write.
type Repository interface {
	// LoadState reads the state document. Returns ErrNotFound when no
	// document has been saved yet.
	LoadState() (*domain.State, error)

	// SaveState serializes and writes the full state document.
	SaveState(state *domain.State) error

	// LoadSession reads the active session document. Returns
	// ErrNotFound when no session is persisted.
	LoadSession() (*domain.Session, error)

	// SaveSession serializes and writes the session document.
	SaveSession(session *domain.Session) error

	// ClearSession removes the session document. Clearing an absent
	// session is not an error.
	ClearSession() error

	// Reset removes both documents, returning the repository to its
	// first-start condition.
	Reset() error
}
