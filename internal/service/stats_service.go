package service

import (
	"sort"
	"time"

	"github.com/immaculate/crm-backend/internal/domain"
	"github.com/immaculate/crm-backend/internal/store"
)

// StatsService computes the dashboard aggregates. Every call does a
// full rescan of the store snapshot; the data set is small and the
// dashboard polls infrequently, so no caching or incremental counters.
type StatsService struct {
	store *store.Store
}

func NewStatsService(st *store.Store) *StatsService {
	return &StatsService{store: st}
}

func (s *StatsService) Snapshot() domain.DashboardStats {
	customers, bookings := s.store.Snapshot()
	now := time.Now()

	stats := domain.DashboardStats{
		TotalCustomers:  len(customers),
		TotalBookings:   len(bookings),
		PopularServices: popularServices(bookings),
		RecentBookings:  recentBookings(bookings),
		BookingsByMonth: bookingsByMonth(bookings, now),
		TopZipCodes:     topZipCodes(customers),
	}

	for _, c := range customers {
		if sameMonth(c.CreatedAt, now) {
			stats.NewCustomersThisMonth++
		}
	}
	for _, b := range bookings {
		if sameMonth(b.Date, now) {
			stats.BookingsThisMonth++
		}
	}

	return stats
}

func sameMonth(t, ref time.Time) bool {
	return t.Month() == ref.Month() && t.Year() == ref.Year()
}

// popularServices counts every service entry across all bookings and
// keeps the top 8. Equal counts keep first-encountered order, so the
// result is deterministic for a given store state.
func popularServices(bookings []domain.Booking) []domain.ServiceCount {
	counts := make(map[string]int)
	var order []string
	for _, b := range bookings {
		for _, svc := range b.Services {
			if _, seen := counts[svc]; !seen {
				order = append(order, svc)
			}
			counts[svc]++
		}
	}

	out := make([]domain.ServiceCount, 0, len(order))
	for _, name := range order {
		out = append(out, domain.ServiceCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > 8 {
		out = out[:8]
	}
	return out
}

// recentBookings returns the 10 most recently dated bookings.
func recentBookings(bookings []domain.Booking) []domain.Booking {
	out := make([]domain.Booking, len(bookings))
	copy(out, bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// bookingsByMonth buckets bookings into the current month and the 11
// preceding ones, oldest first, labeled like "Aug 25".
func bookingsByMonth(bookings []domain.Booking, now time.Time) []domain.MonthCount {
	out := make([]domain.MonthCount, 0, 12)
	for i := 11; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		count := 0
		for _, b := range bookings {
			if sameMonth(b.Date, month) {
				count++
			}
		}
		out = append(out, domain.MonthCount{Month: month.Format("Jan 06"), Count: count})
	}
	return out
}

// topZipCodes counts each customer once by its current zip, skipping
// empty and "N/A" entries, and keeps the top 10. Ties keep
// first-encountered order.
func topZipCodes(customers []domain.Customer) []domain.ZipCount {
	counts := make(map[string]int)
	var order []string
	for _, c := range customers {
		if c.ZipCode == "" || c.ZipCode == "N/A" {
			continue
		}
		if _, seen := counts[c.ZipCode]; !seen {
			order = append(order, c.ZipCode)
		}
		counts[c.ZipCode]++
	}

	out := make([]domain.ZipCount, 0, len(order))
	for _, zip := range order {
		out = append(out, domain.ZipCount{Zip: zip, Count: counts[zip]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}
