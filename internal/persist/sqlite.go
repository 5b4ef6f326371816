package persist

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"bluewave/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// SQLiteRepository stores documents in a SQLite kv table.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the kv schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// LoadState implements Repository.
func (r *SQLiteRepository) LoadState() (*domain.State, error) {
	raw, err := r.get(StateKey)
	if err != nil {
		return nil, err
	}
	state := &domain.State{}
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		return nil, domain.NewPersistenceError("corrupt state document", err)
	}
	return state, nil
}

// SaveState implements Repository.
func (r *SQLiteRepository) SaveState(state *domain.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return domain.NewPersistenceError("serialize state document", err)
	}
	return r.set(StateKey, string(raw))
}

// LoadSession implements Repository.
func (r *SQLiteRepository) LoadSession() (*domain.Session, error) {
	raw, err := r.get(SessionKey)
	if err != nil {
		return nil, err
	}
	session := &domain.Session{}
	if err := json.Unmarshal([]byte(raw), session); err != nil {
		return nil, domain.NewPersistenceError("corrupt session document", err)
	}
	return session, nil
}

// SaveSession implements Repository.
func (r *SQLiteRepository) SaveSession(session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return domain.NewPersistenceError("serialize session document", err)
	}
	return r.set(SessionKey, string(raw))
}

// ClearSession implements Repository.
func (r *SQLiteRepository) ClearSession() error {
	return r.delete(SessionKey)
}

// Reset implements Repository.
func (r *SQLiteRepository) Reset() error {
	if err := r.delete(StateKey); err != nil {
		return err
	}
	return r.delete(SessionKey)
}

func (r *SQLiteRepository) get(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", domain.NewPersistenceError(fmt.Sprintf("read %q", key), err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return domain.NewPersistenceError(fmt.Sprintf("write %q", key), err)
	}
	return nil
}

func (r *SQLiteRepository) delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return domain.NewPersistenceError(fmt.Sprintf("delete %q", key), err)
	}
	return nil
}
