package persist

import (
	"encoding/json"

	"bluewave/internal/domain"
)

// MemoryRepository keeps documents in an in-process map of serialized
// strings. It goes through the same JSON round trip as the durable
// adapter so tests exercise real (de)serialization.
type MemoryRepository struct {
	docs map[string]string

	// FailSaves forces SaveState to fail, for exercising the sales
	// workflow's compensation path.
	FailSaves bool
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: make(map[string]string)}
}

// LoadState implements Repository.
func (r *MemoryRepository) LoadState() (*domain.State, error) {
	raw, ok := r.docs[StateKey]
	if !ok {
		return nil, ErrNotFound
	}
	state := &domain.State{}
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		return nil, domain.NewPersistenceError("corrupt state document", err)
	}
	return state, nil
}

// SaveState implements Repository.
func (r *MemoryRepository) SaveState(state *domain.State) error {
	if r.FailSaves {
		return domain.NewPersistenceError("write refused", nil)
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return domain.NewPersistenceError("serialize state document", err)
	}
	r.docs[StateKey] = string(raw)
	return nil
}

// LoadSession implements Repository.
func (r *MemoryRepository) LoadSession() (*domain.Session, error) {
	raw, ok := r.docs[SessionKey]
	if !ok {
		return nil, ErrNotFound
	}
	session := &domain.Session{}
	if err := json.Unmarshal([]byte(raw), session); err != nil {
		return nil, domain.NewPersistenceError("corrupt session document", err)
	}
	return session, nil
}

// SaveSession implements Repository.
func (r *MemoryRepository) SaveSession(session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return domain.NewPersistenceError("serialize session document", err)
	}
	r.docs[SessionKey] = string(raw)
	return nil
}

// ClearSession implements Repository.
func (r *MemoryRepository) ClearSession() error {
	delete(r.docs, SessionKey)
	return nil
}

// Reset implements Repository.
func (r *MemoryRepository) Reset() error {
	delete(r.docs, StateKey)
	delete(r.docs, SessionKey)
	return nil
}

// Corrupt overwrites a stored document with unparseable text. Test
// helper for the corrupt-read fallback path.
func (r *MemoryRepository) Corrupt(key string) {
	r.docs[key] = "{not json"
}
