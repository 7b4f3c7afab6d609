// Package handlers wires the HTTP surface: webhook ingestion, customer
// listing and maintenance, bookings, and the dashboard stats endpoint.
package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/immaculate/crm-backend/internal/service"
	"github.com/immaculate/crm-backend/internal/store"
)

type Handler struct {
	intake *service.IntakeService
	stats  *service.StatsService
	store  *store.Store
}

func New(intake *service.IntakeService, stats *service.StatsService, st *store.Store) *Handler {
	return &Handler{
		intake: intake,
		stats:  stats,
		store:  st,
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/webhook", h.webhookInfo)
	r.Post("/webhook", h.ingestWebhook)

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.listCustomers)
		r.Post("/", h.createCustomer)
		r.Get("/{id}", h.getCustomer)
		r.Patch("/{id}", h.patchCustomer)
		r.Get("/{id}/bookings", h.listCustomerBookings)
	})

	r.Get("/bookings", h.listBookings)
	r.Get("/stats", h.getStats)

	return r
}
