package store

import (
	"golang.org/x/text/currency"

	"bluewave/internal/domain"
)

// SettingsPatch carries the configurable settings. Nil fields are left
// unchanged.
type SettingsPatch struct {
	Currency               *string
	LowStockThreshold      *int
	CriticalStockThreshold *int
}

// UpdateSettings merges the patch into the settings singleton. The
// currency must be a valid ISO 4217 code and the thresholds must be
// non-negative with critical at or below low.
func (s *Store) UpdateSettings(patch SettingsPatch) (domain.Settings, error) {
	next := s.state.Settings
	if patch.Currency != nil {
		if _, err := currency.ParseISO(*patch.Currency); err != nil {
			return domain.Settings{}, domain.NewValidationError("unknown currency code " + *patch.Currency)
		}
		next.Currency = *patch.Currency
	}
	if patch.LowStockThreshold != nil {
		next.LowStockThreshold = *patch.LowStockThreshold
	}
	if patch.CriticalStockThreshold != nil {
		next.CriticalStockThreshold = *patch.CriticalStockThreshold
	}

	if next.LowStockThreshold < 0 || next.CriticalStockThreshold < 0 {
		return domain.Settings{}, domain.NewValidationError("thresholds cannot be negative")
	}
	if next.CriticalStockThreshold > next.LowStockThreshold {
		return domain.Settings{}, domain.NewValidationError("critical threshold cannot exceed low threshold")
	}

	s.state.Settings = next
	if err := s.persist(); err != nil {
		return domain.Settings{}, err
	}
	return next, nil
}
