package domain

import "time"

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerVIP      CustomerStatus = "vip"
)

func ParseCustomerStatus(s string) (CustomerStatus, bool) {
	switch CustomerStatus(s) {
	case CustomerActive, CustomerInactive, CustomerVIP:
		return CustomerStatus(s), true
	default:
		return "", false
	}
}

type Customer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	ZipCode       string         `json:"zipCode"`
	Vehicles      []string       `json:"vehicles"`
	TotalBookings int            `json:"totalBookings"`
	TotalSpent    float64        `json:"totalSpent"`
	FirstVisit    time.Time      `json:"firstVisit"`
	LastVisit     time.Time      `json:"lastVisit"`
	Status        CustomerStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	Notes         string         `json:"notes,omitempty"`
}

// CustomerPatch carries partial updates for an existing customer.
// Nil fields are left untouched.
type CustomerPatch struct {
	Name       *string         `json:"name,omitempty"`
	Phone      *string         `json:"phone,omitempty"`
	Email      *string         `json:"email,omitempty"`
	ZipCode    *string         `json:"zipCode,omitempty"`
	Vehicles   *[]string       `json:"vehicles,omitempty"`
	TotalSpent *float64        `json:"totalSpent,omitempty"`
	Status     *CustomerStatus `json:"status,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
}

// CustomerInput is the shape accepted by the customer creation endpoint
// and by the webhook resolver: everything except server-generated fields.
type CustomerInput struct {
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	ZipCode       string         `json:"zipCode"`
	Vehicles      []string       `json:"vehicles"`
	TotalBookings int            `json:"totalBookings"`
	TotalSpent    float64        `json:"totalSpent"`
	FirstVisit    time.Time      `json:"firstVisit"`
	LastVisit     time.Time      `json:"lastVisit"`
	Status        CustomerStatus `json:"status"`
	Notes         string         `json:"notes,omitempty"`
}
