package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/immaculate/crm-backend/internal/domain"
)

type seedFile struct {
	Customers []domain.Customer `json:"customers"`
	Bookings  []domain.Booking  `json:"bookings"`
}

// LoadSeed reads the bootstrap data set from path and replaces the
// store contents. It returns the loaded counts.
func (s *Store) LoadSeed(path string) (int, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return 0, 0, fmt.Errorf("parse seed file: %w", err)
	}

	s.Seed(seed.Customers, seed.Bookings)
	return len(seed.Customers), len(seed.Bookings), nil
}

// Seed replaces the store contents with the given records as-is, ids
// and timestamps included. Used at startup and by tests that need
// records with fixed creation times.
func (s *Store) Seed(customers []domain.Customer, bookings []domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = make([]*domain.Customer, 0, len(customers))
	for i := range customers {
		c := customers[i]
		s.customers = append(s.customers, &c)
	}
	s.bookings = make([]*domain.Booking, 0, len(bookings))
	for i := range bookings {
		b := bookings[i]
		s.bookings = append(s.bookings, &b)
	}
}
