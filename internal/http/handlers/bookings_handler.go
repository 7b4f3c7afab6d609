package handlers

import (
	"net/http"

	"github.com/immaculate/crm-backend/internal/domain"
	"github.com/immaculate/crm-backend/internal/http/response"
)

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.store.ListBookings()
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	response.WriteJSON(w, http.StatusOK, bookings)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, h.stats.Snapshot())
}
