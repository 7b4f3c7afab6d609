package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	data := `{
		"customers": [
			{"id": "cust_1", "name": "Marcus Webb", "phone": "5125550134", "status": "vip",
			 "lastVisit": "2025-07-02T14:30:00Z", "createdAt": "2025-02-18T09:15:00Z"}
		],
		"bookings": [
			{"id": "book_1", "customerId": "cust_1", "services": ["Mini Detail"],
			 "date": "2025-07-02T14:30:00Z", "status": "completed", "createdAt": "2025-07-02T14:30:00Z"}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	customers, bookings, err := s.LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if customers != 1 || bookings != 1 {
		t.Errorf("counts = %d/%d, want 1/1", customers, bookings)
	}

	if got := s.GetCustomer("cust_1"); got == nil || got.Name != "Marcus Webb" {
		t.Errorf("seeded customer = %+v", got)
	}
	if got := s.ListBookingsByCustomer("cust_1"); len(got) != 1 {
		t.Errorf("seeded bookings = %d, want 1", len(got))
	}
}

func TestLoadSeedMissingFile(t *testing.T) {
	s := New()
	if _, _, err := s.LoadSeed(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	// Store stays usable and empty
	if got := s.ListCustomers(); len(got) != 0 {
		t.Errorf("customers = %d, want 0", len(got))
	}
}
