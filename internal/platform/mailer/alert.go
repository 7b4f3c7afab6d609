package mailer

import (
	"fmt"
	"strings"

	"github.com/immaculate/crm-backend/internal/domain"
)

// bookingAlertBody renders the owner notification for a newly ingested
// booking, in text and HTML form.
func bookingAlertBody(booking *domain.Booking, customer *domain.Customer) (subject, text, html string) {
	services := strings.Join(booking.Services, ", ")

	subject = fmt.Sprintf("New booking: %s - %s", booking.CustomerName, services)

	text = fmt.Sprintf(
		"New booking received.\n\nCustomer: %s\nPhone: %s\nVehicle: %s\nZip: %s\nServices: %s\nReceived: %s\nTotal bookings for this customer: %d\n",
		booking.CustomerName, booking.Phone, booking.Vehicle, booking.ZipCode,
		services, booking.Date.Format("Jan 2, 2006 3:04 PM"), customer.TotalBookings,
	)

	html = fmt.Sprintf(
		`<h3>New booking received</h3>
<p><b>Customer:</b> %s<br>
<b>Phone:</b> %s<br>
<b>Vehicle:</b> %s<br>
<b>Zip:</b> %s<br>
<b>Services:</b> %s<br>
<b>Received:</b> %s<br>
<b>Total bookings for this customer:</b> %d</p>`,
		booking.CustomerName, booking.Phone, booking.Vehicle, booking.ZipCode,
		services, booking.Date.Format("Jan 2, 2006 3:04 PM"), customer.TotalBookings,
	)

	return subject, text, html
}
