package service

import (
	"context"
	"time"

	"github.com/immaculate/crm-backend/internal/domain"
	"github.com/immaculate/crm-backend/internal/platform/mailer"
	"github.com/immaculate/crm-backend/internal/store"
	"github.com/immaculate/crm-backend/internal/webhook"
	"github.com/immaculate/crm-backend/pkg/config"
	"github.com/immaculate/crm-backend/pkg/events"
	"github.com/immaculate/crm-backend/pkg/logger"
)

// IntakeService turns raw webhook payloads into customer and booking
// records: normalize fields, resolve the customer, append the booking,
// then fan out events and the owner notification. Event and mail
// failures are logged and never fail the ingestion; the form system
// retries delivery on its own.
type IntakeService struct {
	store  *store.Store
	bus    events.Publisher
	mailer mailer.Service
	config *config.Config
}

func NewIntakeService(st *store.Store, bus events.Publisher, m mailer.Service, cfg *config.Config) *IntakeService {
	return &IntakeService{
		store:  st,
		bus:    bus,
		mailer: m,
		config: cfg,
	}
}

func (s *IntakeService) Ingest(ctx context.Context, payload webhook.Payload) (*domain.Booking, *domain.Customer, error) {
	sub := webhook.Parse(payload)

	customer, created := s.store.ResolveCustomer(sub.Name, sub.Phone, sub.Email, sub.ZipCode, sub.Vehicle)

	booking := s.store.AddBooking(domain.Booking{
		CustomerID:   customer.ID,
		CustomerName: sub.Name,
		Phone:        sub.Phone,
		Vehicle:      sub.Vehicle,
		ZipCode:      sub.ZipCode,
		Services:     sub.Services,
		Date:         time.Now(),
		Status:       domain.BookingPending,
	})

	logger.InfoContext(ctx, "Booking ingested",
		"booking_id", booking.ID,
		"customer_id", customer.ID,
		"customer_created", created,
		"services", sub.Services,
	)

	if created {
		event := events.CustomerCreatedEvent{
			CustomerID: customer.ID,
			Name:       customer.Name,
			Phone:      customer.Phone,
			ZipCode:    customer.ZipCode,
			CreatedAt:  customer.CreatedAt,
		}
		if err := s.bus.Publish(ctx, events.CustomerCreated, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish customer created event", "error", err, "customer_id", customer.ID)
		}
	}

	event := events.BookingReceivedEvent{
		BookingID:    booking.ID,
		CustomerID:   customer.ID,
		CustomerName: booking.CustomerName,
		Phone:        booking.Phone,
		Services:     booking.Services,
		Date:         booking.Date,
	}
	if err := s.bus.Publish(ctx, events.BookingReceived, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking received event", "error", err, "booking_id", booking.ID)
	}

	// Re-read so the alert carries the post-booking counter.
	current := s.store.GetCustomer(customer.ID)
	if current == nil {
		current = &customer
	}
	if s.config.Email.OwnerEmail != "" || s.config.Email.DevMode {
		if err := s.mailer.SendBookingAlert(s.config.Email.OwnerEmail, s.config.Email.OwnerName, &booking, current); err != nil {
			logger.ErrorContext(ctx, "Failed to send booking alert", "error", err, "booking_id", booking.ID)
		}
	}

	return &booking, current, nil
}
