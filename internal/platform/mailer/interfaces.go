package mailer

import "github.com/immaculate/crm-backend/internal/domain"

type Service interface {
	Send(toEmail, toName, subject, text, html string) (string, error)
	SendBookingAlert(toEmail, toName string, booking *domain.Booking, customer *domain.Customer) error
}
