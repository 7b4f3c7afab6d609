package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/immaculate/crm-backend/internal/domain"
	"github.com/immaculate/crm-backend/internal/http/response"
)

// listCustomers returns all customers ordered by last visit, or the
// substring matches for the q parameter.
func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var customers []domain.Customer
	if query != "" {
		customers = h.store.SearchCustomers(query)
	} else {
		customers = h.store.ListCustomers()
	}
	if customers == nil {
		customers = []domain.Customer{}
	}

	response.WriteJSON(w, http.StatusOK, customers)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var in domain.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	if in.Name == "" {
		response.BadRequest(w, "name is required")
		return
	}
	if in.Status == "" {
		in.Status = domain.CustomerActive
	} else if _, ok := domain.ParseCustomerStatus(string(in.Status)); !ok {
		response.BadRequest(w, "status must be 'active', 'inactive', or 'vip'")
		return
	}

	customer := h.store.AddCustomer(in)
	response.WriteJSON(w, http.StatusCreated, customer)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer := h.store.GetCustomer(chi.URLParam(r, "id"))
	if customer == nil {
		response.NotFound(w, "customer not found")
		return
	}
	response.WriteJSON(w, http.StatusOK, customer)
}

func (h *Handler) patchCustomer(w http.ResponseWriter, r *http.Request) {
	var patch domain.CustomerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	if patch.Status != nil {
		if _, ok := domain.ParseCustomerStatus(string(*patch.Status)); !ok {
			response.BadRequest(w, "status must be 'active', 'inactive', or 'vip'")
			return
		}
	}

	customer := h.store.UpdateCustomer(chi.URLParam(r, "id"), patch)
	if customer == nil {
		response.NotFound(w, "customer not found")
		return
	}
	response.WriteJSON(w, http.StatusOK, customer)
}

func (h *Handler) listCustomerBookings(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.store.GetCustomer(id) == nil {
		response.NotFound(w, "customer not found")
		return
	}

	bookings := h.store.ListBookingsByCustomer(id)
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	response.WriteJSON(w, http.StatusOK, bookings)
}
