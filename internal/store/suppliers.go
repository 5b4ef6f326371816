package store

import (
	"strings"

	"bluewave/internal/domain"
)

// SupplierInput is the payload for adding a supplier.
type SupplierInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Categories    string
	Address       string
}

// AddSupplier validates the input, assigns the next id and appends the
// supplier.
func (s *Store) AddSupplier(input SupplierInput) (*domain.Supplier, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("supplier name is required")
	}

	supplier := domain.Supplier{
		ID:            s.state.NextSupplierID(),
		Name:          strings.TrimSpace(input.Name),
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Categories:    input.Categories,
		Address:       input.Address,
	}
	s.state.Suppliers = append(s.state.Suppliers, supplier)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Supplier returns the supplier with the given id.
func (s *Store) Supplier(id int) (*domain.Supplier, error) {
	i := s.state.FindSupplier(id)
	if i < 0 {
		return nil, domain.NewNotFoundError("supplier", id)
	}
	return &s.state.Suppliers[i], nil
}
