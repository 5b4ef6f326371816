package backup

import (
	"encoding/json"
	"time"

	"bluewave/internal/domain"
)

// Document is the JSON backup shape: the full state document plus an
// export timestamp.
type Document struct {
	Books      []domain.Book     `json:"books"`
	Sales      []domain.Sale     `json:"sales"`
	Suppliers  []domain.Supplier `json:"suppliers"`
	Settings   *domain.Settings  `json:"settings,omitempty"`
	ExportDate string            `json:"exportDate,omitempty"`
}

// ExportJSON renders the full state as an indented backup document
// stamped with the export time.
func ExportJSON(state *domain.State, clock domain.Clock) ([]byte, error) {
	settings := state.Settings
	doc := Document{
		Books:      state.Books,
		Sales:      state.Sales,
		Suppliers:  state.Suppliers,
		Settings:   &settings,
		ExportDate: clock.Now().UTC().Format(time.RFC3339),
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, domain.NewPersistenceError("serialize backup document", err)
	}
	return raw, nil
}

// ParseImport validates a candidate import document and converts it to
// a state. current supplies the settings to keep when the document
// carries none (older backups omit them).
//
// The document is checked against the backup schema before anything is
// returned, so a malformed document is rejected before any state
// replacement can happen.
func ParseImport(raw []byte, current domain.Settings) (*domain.State, error) {
	if err := ValidateDocument(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, domain.NewPersistenceError("parse import document", err)
	}

	settings := current
	if doc.Settings != nil {
		settings = *doc.Settings
	}
	return &domain.State{
		Books:     doc.Books,
		Sales:     doc.Sales,
		Suppliers: doc.Suppliers,
		Settings:  settings,
	}, nil
}
