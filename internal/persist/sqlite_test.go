package persist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bluewave/internal/domain"
)

func TestOpen_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer r.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		r, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		r.Close()
	}
}

func TestSQLite_LoadState_NotFound(t *testing.T) {
	r := openTestRepo(t)

	_, err := r.LoadState()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadState() on empty db = %v, want ErrNotFound", err)
	}
}

func TestSQLite_StateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	state := &domain.State{
		Books:    []domain.Book{{ID: 1, Title: "Clean Code", Price: 45.99, Quantity: 12}},
		Sales:    []domain.Sale{{ID: 1, BookID: 1, Title: "Clean Code", Quantity: 1, UnitPrice: 45.99, TotalPrice: 45.99}},
		Settings: domain.DefaultSettings,
	}
	if err := r.SaveState(state); err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}
	r.Close()

	// Reopen to prove the document survived the connection.
	r2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer r2.Close()

	got, err := r2.LoadState()
	if err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}
	if len(got.Books) != 1 || got.Books[0].Title != "Clean Code" {
		t.Errorf("loaded books = %+v", got.Books)
	}
	if got.Sales[0].TotalPrice != 45.99 {
		t.Errorf("loaded sale total = %v, want 45.99", got.Sales[0].TotalPrice)
	}
	if got.Settings != domain.DefaultSettings {
		t.Errorf("loaded settings = %+v", got.Settings)
	}
}

func TestSQLite_SaveState_Overwrites(t *testing.T) {
	r := openTestRepo(t)

	if err := r.SaveState(&domain.State{Books: []domain.Book{{ID: 1}}}); err != nil {
		t.Fatalf("first SaveState() failed: %v", err)
	}
	if err := r.SaveState(&domain.State{Books: []domain.Book{{ID: 1}, {ID: 2}}}); err != nil {
		t.Fatalf("second SaveState() failed: %v", err)
	}

	got, err := r.LoadState()
	if err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}
	if len(got.Books) != 2 {
		t.Errorf("loaded %d books, want 2", len(got.Books))
	}
}

func TestSQLite_SessionLifecycle(t *testing.T) {
	r := openTestRepo(t)

	if _, err := r.LoadSession(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadSession() before save = %v, want ErrNotFound", err)
	}

	session := &domain.Session{Username: "admin", Role: domain.RoleAdmin, FullName: "System Administrator", Token: "tok"}
	if err := r.SaveSession(session); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	got, err := r.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if got.Username != "admin" || got.Role != domain.RoleAdmin {
		t.Errorf("loaded session = %+v", got)
	}

	if err := r.ClearSession(); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}
	if _, err := r.LoadSession(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadSession() after clear = %v, want ErrNotFound", err)
	}
}

func TestSQLite_CorruptState(t *testing.T) {
	r := openTestRepo(t)

	if err := r.set(StateKey, "{not json"); err != nil {
		t.Fatalf("set() failed: %v", err)
	}

	_, err := r.LoadState()
	if !domain.IsPersistence(err) {
		t.Errorf("LoadState() on corrupt value = %v, want persistence error", err)
	}
}

func TestSQLite_Reset(t *testing.T) {
	r := openTestRepo(t)

	if err := r.SaveState(&domain.State{}); err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}
	if err := r.SaveSession(&domain.Session{Username: "admin"}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	if err := r.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if _, err := r.LoadState(); !errors.Is(err, ErrNotFound) {
		t.Errorf("state survived Reset(): %v", err)
	}
	if _, err := r.LoadSession(); !errors.Is(err, ErrNotFound) {
		t.Errorf("session survived Reset(): %v", err)
	}
}

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}
