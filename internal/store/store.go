package store

import (
	"errors"
	"log/slog"

	"bluewave/internal/domain"
	"bluewave/internal/persist"
)

// Store owns the application state and gates every mutation.
type Store struct {
	state *domain.State
	repo  persist.Repository
	clock domain.Clock
}

// Open loads the persisted state document, falling back to the seed
// dataset when no document exists or the stored one cannot be parsed.
// A fresh seed is persisted immediately so the next start finds it.
func Open(repo persist.Repository, clock domain.Clock, defaults domain.Settings) (*Store, error) {
	state, err := repo.LoadState()
	switch {
	case err == nil:
		// loaded
	case errors.Is(err, persist.ErrNotFound):
		slog.Info("no saved data, creating seed dataset")
		state = domain.Seed(clock, defaults)
		if saveErr := repo.SaveState(state); saveErr != nil {
			return nil, saveErr
		}
	case domain.IsPersistence(err):
		slog.Warn("saved data unreadable, rebuilding seed dataset", "error", err)
		state = domain.Seed(clock, defaults)
		if saveErr := repo.SaveState(state); saveErr != nil {
			return nil, saveErr
		}
	default:
		return nil, err
	}

	return &Store{state: state, repo: repo, clock: clock}, nil
}

// State returns the live state object. Callers must not retain it
// across mutations.
func (s *Store) State() *domain.State { return s.state }

// Clock returns the store's clock.
func (s *Store) Clock() domain.Clock { return s.clock }

// Books returns the catalog in insertion order.
func (s *Store) Books() []domain.Book { return s.state.Books }

// Sales returns the ledger in insertion order.
func (s *Store) Sales() []domain.Sale { return s.state.Sales }

// Suppliers returns the supplier list in insertion order.
func (s *Store) Suppliers() []domain.Supplier { return s.state.Suppliers }

// Settings returns the settings singleton.
func (s *Store) Settings() domain.Settings { return s.state.Settings }

// Replace swaps the entire state document and persists it. Used by the
// import flow after the replacement document has been validated.
func (s *Store) Replace(state *domain.State) error {
	if err := s.repo.SaveState(state); err != nil {
		return err
	}
	s.state = state
	return nil
}

// Reset drops the persisted documents and rebuilds the seed dataset.
func (s *Store) Reset(defaults domain.Settings) error {
	if err := s.repo.Reset(); err != nil {
		return err
	}
	s.state = domain.Seed(s.clock, defaults)
	return s.repo.SaveState(s.state)
}

// Save writes the full current state document. Exposed for workflows
// that mutate the state object directly and must persist before
// returning.
func (s *Store) Save() error {
	return s.repo.SaveState(s.state)
}

// persist writes the full state document. Called by every mutating
// operation before it returns.
func (s *Store) persist() error {
	return s.repo.SaveState(s.state)
}
