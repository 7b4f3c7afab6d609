package mailer

import (
	"strings"

	"github.com/immaculate/crm-backend/internal/domain"
	"github.com/immaculate/crm-backend/pkg/logger"
)

// DevMailer logs notifications instead of sending them.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	logger.Info("[DEV MAIL]",
		"to", toEmail,
		"name", toName,
		"subject", subject,
		"text", text,
	)
	return "dev", nil
}

func (d *DevMailer) SendBookingAlert(toEmail, toName string, booking *domain.Booking, customer *domain.Customer) error {
	logger.Info("[DEV MAIL] Booking alert",
		"to", toEmail,
		"booking_id", booking.ID,
		"customer", booking.CustomerName,
		"services", strings.Join(booking.Services, ", "),
	)
	return nil
}
