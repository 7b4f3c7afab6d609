package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking is immutable once stored. The customer fields are a snapshot
// of the submission, deliberately not kept in sync with later customer
// edits.
type Booking struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	Phone         string        `json:"phone"`
	Vehicle       string        `json:"vehicle"`
	ZipCode       string        `json:"zipCode"`
	Services      []string      `json:"services"`
	Date          time.Time     `json:"date"`
	ScheduledDate string        `json:"scheduledDate,omitempty"`
	ScheduledTime string        `json:"scheduledTime,omitempty"`
	Status        BookingStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
