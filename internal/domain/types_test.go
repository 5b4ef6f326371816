package domain

import (
	"testing"
	"time"
)

type stubClock struct{ t time.Time }

func (c stubClock) Now() time.Time { return c.t }

func TestNextBookID_Empty(t *testing.T) {
	s := &State{}
	if got := s.NextBookID(); got != 1 {
		t.Errorf("NextBookID() on empty catalog = %d, want 1", got)
	}
}

func TestNextBookID_MaxPlusOne(t *testing.T) {
	s := &State{Books: []Book{{ID: 1}, {ID: 7}, {ID: 3}}}
	if got := s.NextBookID(); got != 8 {
		t.Errorf("NextBookID() = %d, want 8", got)
	}
}

func TestNextBookID_ReusesGapAfterMaxDeleted(t *testing.T) {
	// Deleting the max-id book makes its id available again.
	s := &State{Books: []Book{{ID: 1}, {ID: 2}, {ID: 3}}}
	s.Books = s.Books[:2]
	if got := s.NextBookID(); got != 3 {
		t.Errorf("NextBookID() after deleting max = %d, want 3", got)
	}
}

func TestNextSaleID_MaxPlusOne(t *testing.T) {
	s := &State{Sales: []Sale{{ID: 4}, {ID: 2}}}
	if got := s.NextSaleID(); got != 5 {
		t.Errorf("NextSaleID() = %d, want 5", got)
	}
}

func TestFindBook(t *testing.T) {
	s := &State{Books: []Book{{ID: 1}, {ID: 5}}}
	if got := s.FindBook(5); got != 1 {
		t.Errorf("FindBook(5) = %d, want 1", got)
	}
	if got := s.FindBook(99); got != -1 {
		t.Errorf("FindBook(99) = %d, want -1", got)
	}
}

func TestSeed_Shape(t *testing.T) {
	clock := stubClock{t: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)}
	state := Seed(clock, DefaultSettings)

	if len(state.Books) != 8 {
		t.Errorf("seed has %d books, want 8", len(state.Books))
	}
	if len(state.Sales) != 4 {
		t.Errorf("seed has %d sales, want 4", len(state.Sales))
	}
	if len(state.Suppliers) != 2 {
		t.Errorf("seed has %d suppliers, want 2", len(state.Suppliers))
	}
	if state.Settings != DefaultSettings {
		t.Errorf("seed settings = %+v, want defaults", state.Settings)
	}
}

func TestSeed_SaleDatesRelativeToClock(t *testing.T) {
	clock := stubClock{t: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)}
	state := Seed(clock, DefaultSettings)

	var today, yesterday int
	for _, s := range state.Sales {
		switch s.SaleDate {
		case "2024-02-01":
			today++
		case "2024-01-31":
			yesterday++
		default:
			t.Errorf("sale %d dated %q, want today or yesterday", s.ID, s.SaleDate)
		}
	}
	if today != 3 || yesterday != 1 {
		t.Errorf("seed sales split today=%d yesterday=%d, want 3/1", today, yesterday)
	}
}

func TestTodayAndTimeOfDay_Layouts(t *testing.T) {
	clock := stubClock{t: time.Date(2024, 2, 1, 14, 5, 0, 0, time.UTC)}
	if got := Today(clock); got != "2024-02-01" {
		t.Errorf("Today() = %q, want 2024-02-01", got)
	}
	if got := TimeOfDay(clock); got != "02:05 PM" {
		t.Errorf("TimeOfDay() = %q, want 02:05 PM", got)
	}
}
