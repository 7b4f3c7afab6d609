package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/immaculate/crm-backend/internal/domain"
)

func TestCreateAndGetCustomer(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"name":"Dana Ellis","phone":"5125550177","zipCode":"78745"}`
	req := httptest.NewRequest("POST", "/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created domain.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Errorf("server fields not assigned: %+v", created)
	}
	if created.Status != domain.CustomerActive {
		t.Errorf("default status = %q, want active", created.Status)
	}

	req = httptest.NewRequest("GET", "/customers/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, body := range []string{
		`not json`,
		`{"phone":"5125550177"}`,
		`{"name":"Dana","status":"gold"}`,
	} {
		req := httptest.NewRequest("POST", "/customers", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestListAndSearchCustomers(t *testing.T) {
	router, st := newTestRouter(t)
	st.AddCustomer(domain.CustomerInput{Name: "Marcus Webb", Phone: "5125550134", Status: domain.CustomerActive})
	st.AddCustomer(domain.CustomerInput{Name: "Dana Ellis", Phone: "5125550177", Status: domain.CustomerActive})

	req := httptest.NewRequest("GET", "/customers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var all []domain.Customer
	json.Unmarshal(rec.Body.Bytes(), &all)
	if len(all) != 2 {
		t.Fatalf("list: got %d, want 2", len(all))
	}

	req = httptest.NewRequest("GET", "/customers?q=dana", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var filtered []domain.Customer
	json.Unmarshal(rec.Body.Bytes(), &filtered)
	if len(filtered) != 1 || filtered[0].Name != "Dana Ellis" {
		t.Errorf("search: got %+v", filtered)
	}
}

func TestPatchCustomer(t *testing.T) {
	router, st := newTestRouter(t)
	created := st.AddCustomer(domain.CustomerInput{Name: "Dana Ellis", Status: domain.CustomerActive})

	req := httptest.NewRequest("PATCH", "/customers/"+created.ID, strings.NewReader(`{"notes":"returns in fall"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got domain.Customer
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Notes != "returns in fall" {
		t.Errorf("notes = %q", got.Notes)
	}

	req = httptest.NewRequest("PATCH", "/customers/cust_missing", strings.NewReader(`{"notes":"x"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}

func TestCustomerBookingsAndStats(t *testing.T) {
	router, st := newTestRouter(t)
	c, _ := st.ResolveCustomer("Jane Doe", "5125550134", "", "78704", "")
	st.AddBooking(domain.Booking{
		CustomerID: c.ID,
		Services:   []string{"Mini Detail"},
		Status:     domain.BookingPending,
	})

	req := httptest.NewRequest("GET", "/customers/"+c.ID+"/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var bookings []domain.Booking
	json.Unmarshal(rec.Body.Bytes(), &bookings)
	if len(bookings) != 1 {
		t.Fatalf("bookings: got %d, want 1", len(bookings))
	}

	req = httptest.NewRequest("GET", "/customers/cust_missing/bookings", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown customer status = %d, want 404", rec.Code)
	}

	req = httptest.NewRequest("GET", "/stats", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var stats domain.DashboardStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("bad stats json: %v", err)
	}
	if stats.TotalCustomers != 1 || stats.TotalBookings != 1 {
		t.Errorf("stats totals = %d/%d, want 1/1", stats.TotalCustomers, stats.TotalBookings)
	}
	if len(stats.BookingsByMonth) != 12 {
		t.Errorf("bookingsByMonth entries = %d, want 12", len(stats.BookingsByMonth))
	}
}
