package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/immaculate/crm-backend/internal/domain"
	"github.com/immaculate/crm-backend/internal/store"
)

func TestSnapshotEmptyStore(t *testing.T) {
	stats := NewStatsService(store.New()).Snapshot()

	if stats.TotalCustomers != 0 || stats.TotalBookings != 0 {
		t.Errorf("counts = %d/%d, want 0/0", stats.TotalCustomers, stats.TotalBookings)
	}
	if stats.NewCustomersThisMonth != 0 || stats.BookingsThisMonth != 0 {
		t.Errorf("month counts = %d/%d, want 0/0", stats.NewCustomersThisMonth, stats.BookingsThisMonth)
	}
	if len(stats.PopularServices) != 0 {
		t.Errorf("popularServices = %v, want empty", stats.PopularServices)
	}
	if len(stats.TopZipCodes) != 0 {
		t.Errorf("topZipCodes = %v, want empty", stats.TopZipCodes)
	}
	if len(stats.RecentBookings) != 0 {
		t.Errorf("recentBookings = %v, want empty", stats.RecentBookings)
	}
	if len(stats.BookingsByMonth) != 12 {
		t.Fatalf("bookingsByMonth has %d entries, want 12", len(stats.BookingsByMonth))
	}
	for _, m := range stats.BookingsByMonth {
		if m.Count != 0 {
			t.Errorf("month %s count = %d, want 0", m.Month, m.Count)
		}
	}
}

func TestSnapshotPopularServices(t *testing.T) {
	st := store.New()
	c, _ := st.ResolveCustomer("Jane Doe", "5125550134", "", "", "")

	for _, services := range [][]string{
		{"A", "B"},
		{"A"},
		{"A", "C"},
	} {
		st.AddBooking(domain.Booking{
			CustomerID: c.ID,
			Services:   services,
			Date:       time.Now(),
			Status:     domain.BookingPending,
		})
	}

	got := NewStatsService(st).Snapshot().PopularServices
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	if got[0].Name != "A" || got[0].Count != 3 {
		t.Errorf("top service = %+v, want A with 3", got[0])
	}
	for _, entry := range got[1:] {
		if entry.Count != 1 {
			t.Errorf("entry %+v, want count 1", entry)
		}
	}
	// Ties keep first-encountered order: B before C
	if got[1].Name != "B" || got[2].Name != "C" {
		t.Errorf("tie order = %s,%s, want B,C", got[1].Name, got[2].Name)
	}
}

func TestSnapshotTopZipCodes(t *testing.T) {
	st := store.New()
	for _, zip := range []string{"78745", "78704", "", "N/A", "78704"} {
		st.AddCustomer(domain.CustomerInput{
			Name:    "X",
			ZipCode: zip,
			Status:  domain.CustomerActive,
		})
	}

	got := NewStatsService(st).Snapshot().TopZipCodes
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 zips (empty and N/A excluded)", got)
	}
	if got[0].Zip != "78704" || got[0].Count != 2 {
		t.Errorf("top zip = %+v, want 78704 with 2", got[0])
	}
	if got[1].Zip != "78745" || got[1].Count != 1 {
		t.Errorf("second zip = %+v, want 78745 with 1", got[1])
	}
}

func TestSnapshotBookingsByMonth(t *testing.T) {
	st := store.New()
	c, _ := st.ResolveCustomer("Jane Doe", "5125550134", "", "", "")

	now := time.Now()
	twoMonthsAgo := time.Date(now.Year(), now.Month()-2, 15, 12, 0, 0, 0, now.Location())
	st.AddBooking(domain.Booking{CustomerID: c.ID, Services: []string{"A"}, Date: now, Status: domain.BookingPending})
	st.AddBooking(domain.Booking{CustomerID: c.ID, Services: []string{"A"}, Date: twoMonthsAgo, Status: domain.BookingPending})

	months := NewStatsService(st).Snapshot().BookingsByMonth
	if len(months) != 12 {
		t.Fatalf("got %d entries, want 12", len(months))
	}
	if months[11].Count != 1 {
		t.Errorf("current month count = %d, want 1", months[11].Count)
	}
	if months[9].Count != 1 {
		t.Errorf("two months ago count = %d, want 1", months[9].Count)
	}
	if want := now.Format("Jan 06"); months[11].Month != want {
		t.Errorf("current month label = %q, want %q", months[11].Month, want)
	}
}

func TestSnapshotMonthCounters(t *testing.T) {
	st := store.New()
	old := time.Now().AddDate(0, -3, 0)
	st.Seed([]domain.Customer{
		{ID: "cust_old", Name: "Old", CreatedAt: old, Status: domain.CustomerActive},
	}, []domain.Booking{
		{ID: "book_old", CustomerID: "cust_old", Services: []string{"A"}, Date: old, Status: domain.BookingCompleted},
	})

	// One fresh customer and booking in the current month
	c, _ := st.ResolveCustomer("Jane Doe", "5125550134", "", "", "")
	st.AddBooking(domain.Booking{CustomerID: c.ID, Services: []string{"A"}, Date: time.Now(), Status: domain.BookingPending})

	stats := NewStatsService(st).Snapshot()
	if stats.NewCustomersThisMonth != 1 {
		t.Errorf("newCustomersThisMonth = %d, want 1", stats.NewCustomersThisMonth)
	}
	if stats.BookingsThisMonth != 1 {
		t.Errorf("bookingsThisMonth = %d, want 1", stats.BookingsThisMonth)
	}
	if stats.TotalCustomers != 2 || stats.TotalBookings != 2 {
		t.Errorf("totals = %d/%d, want 2/2", stats.TotalCustomers, stats.TotalBookings)
	}
}

func TestSnapshotRecentBookings(t *testing.T) {
	st := store.New()
	c, _ := st.ResolveCustomer("Jane Doe", "5125550134", "", "", "")

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		st.AddBooking(domain.Booking{
			CustomerID: c.ID,
			Services:   []string{fmt.Sprintf("svc-%d", i)},
			Date:       base.AddDate(0, 0, i),
			Status:     domain.BookingPending,
		})
	}

	recent := NewStatsService(st).Snapshot().RecentBookings
	if len(recent) != 10 {
		t.Fatalf("got %d recent bookings, want 10", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Date.After(recent[i-1].Date) {
			t.Fatalf("recent bookings not ordered by date desc at %d", i)
		}
	}
	if recent[0].Services[0] != "svc-11" {
		t.Errorf("most recent = %v, want svc-11", recent[0].Services)
	}
}
