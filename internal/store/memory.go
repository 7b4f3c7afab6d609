// Package store holds the authoritative in-memory record collections
// for the lifetime of the process. All access goes through a
// mutex-guarded Store value injected into the services; webhook
// deliveries may arrive concurrently and the resolve/append paths must
// be atomic to keep one customer per phone number.
package store

import (
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/immaculate/crm-backend/internal/domain"
)

type Store struct {
	mu        sync.RWMutex
	customers []*domain.Customer
	bookings  []*domain.Booking
}

func New() *Store {
	return &Store{}
}

// ListCustomers returns all customers ordered by last visit, most
// recent first. Stored order stays insertion order; sorting is a
// view-time concern.
func (s *Store) ListCustomers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastVisit.After(out[j].LastVisit)
	})
	return out
}

func (s *Store) GetCustomer(id string) *domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c := s.findByID(id); c != nil {
		cp := *c
		return &cp
	}
	return nil
}

// SearchCustomers matches the query as a substring against name, phone,
// email, and vehicle descriptions. Name, email, and vehicles are
// compared case-insensitively; phone is compared as entered.
func (s *Store) SearchCustomers(query string) []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []domain.Customer
	for _, c := range s.customers {
		if matchesQuery(c, q, query) {
			out = append(out, *c)
		}
	}
	return out
}

func matchesQuery(c *domain.Customer, lowered, raw string) bool {
	if strings.Contains(strings.ToLower(c.Name), lowered) ||
		strings.Contains(c.Phone, raw) ||
		strings.Contains(strings.ToLower(c.Email), lowered) {
		return true
	}
	for _, v := range c.Vehicles {
		if strings.Contains(strings.ToLower(v), lowered) {
			return true
		}
	}
	return false
}

// AddCustomer appends a new customer record, assigning its identity and
// creation timestamp.
func (s *Store) AddCustomer(in domain.CustomerInput) domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.appendCustomer(in)
}

func (s *Store) appendCustomer(in domain.CustomerInput) *domain.Customer {
	c := &domain.Customer{
		ID:            newID("cust"),
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		ZipCode:       in.ZipCode,
		Vehicles:      in.Vehicles,
		TotalBookings: in.TotalBookings,
		TotalSpent:    in.TotalSpent,
		FirstVisit:    in.FirstVisit,
		LastVisit:     in.LastVisit,
		Status:        in.Status,
		CreatedAt:     time.Now(),
		Notes:         in.Notes,
	}
	s.customers = append(s.customers, c)
	return c
}

// UpdateCustomer applies a partial update and returns the updated
// record, or nil when the id is unknown.
func (s *Store) UpdateCustomer(id string, patch domain.CustomerPatch) *domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findByID(id)
	if c == nil {
		return nil
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.ZipCode != nil {
		c.ZipCode = *patch.ZipCode
	}
	if patch.Vehicles != nil {
		c.Vehicles = *patch.Vehicles
	}
	if patch.TotalSpent != nil {
		c.TotalSpent = *patch.TotalSpent
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	cp := *c
	return &cp
}

// ResolveCustomer maps normalized submission fields to exactly one
// customer, creating one when nothing matches. Lookup is by normalized
// phone first (phone entry is more stable than free-text names), then
// by case-insensitive name. A matched customer gains the submission's
// vehicle if novel and an email backfill if it had none; nothing else
// is touched. The second return reports whether a record was created.
//
// Known limitation: two real customers sharing a household phone line
// merge into one record. Flagged to the owner, kept as-is.
func (s *Store) ResolveCustomer(name, phone, email, zipCode, vehicle string) (domain.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *domain.Customer
	if phone != "" {
		for _, c := range s.customers {
			if c.Phone != "" && c.Phone == phone {
				found = c
				break
			}
		}
	}
	if found == nil && name != "" {
		for _, c := range s.customers {
			if strings.EqualFold(c.Name, name) {
				found = c
				break
			}
		}
	}

	if found != nil {
		if vehicle != "" && !containsString(found.Vehicles, vehicle) {
			found.Vehicles = append(found.Vehicles, vehicle)
		}
		if email != "" && found.Email == "" {
			found.Email = email
		}
		return *found, false
	}

	now := time.Now()
	var vehicles []string
	if vehicle != "" {
		vehicles = []string{vehicle}
	}
	created := s.appendCustomer(domain.CustomerInput{
		Name:       name,
		Phone:      phone,
		Email:      email,
		ZipCode:    zipCode,
		Vehicles:   vehicles,
		FirstVisit: now,
		LastVisit:  now,
		Status:     domain.CustomerActive,
	})
	return *created, true
}

// ListBookings returns all bookings ordered by date, most recent first.
func (s *Store) ListBookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	sortByDateDesc(out)
	return out
}

func (s *Store) ListBookingsByCustomer(customerID string) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Booking
	for _, b := range s.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	sortByDateDesc(out)
	return out
}

// AddBooking appends a booking, assigning identity and creation
// timestamp, and bumps the referenced customer's booking counter and
// last visit. A dangling customer id skips the counter update without
// failing the append.
func (s *Store) AddBooking(b domain.Booking) domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = newID("book")
	b.CreatedAt = time.Now()
	stored := b
	s.bookings = append(s.bookings, &stored)

	if c := s.findByID(b.CustomerID); c != nil {
		c.TotalBookings++
		c.LastVisit = b.Date
	}
	return b
}

// Snapshot copies both collections in insertion order under a single
// read lock, giving the aggregator a consistent view.
func (s *Store) Snapshot() ([]domain.Customer, []domain.Booking) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		customers = append(customers, *c)
	}
	bookings := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		bookings = append(bookings, *b)
	}
	return customers, bookings
}

func (s *Store) findByID(id string) *domain.Customer {
	for _, c := range s.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func sortByDateDesc(bs []domain.Booking) {
	sort.SliceStable(bs, func(i, j int) bool {
		return bs[i].Date.After(bs[j].Date)
	})
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newID builds ids like book_1756400000000_x4k2p9: millisecond
// timestamp plus a random suffix, never reused.
func newID(prefix string) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return prefix + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}
