// Package webhook normalizes loosely-structured form submissions into
// canonical customer and booking fields. The form builder emits
// different field names depending on form version, so every canonical
// field carries an ordered list of accepted source keys that is probed
// front to back.
package webhook

import (
	"fmt"
	"strconv"
	"strings"
)

// Payload is a raw form submission: arbitrary keys, values that may be
// strings, booleans, or numbers depending on how the form serialized.
type Payload map[string]any

// Submission holds the normalized fields extracted from a payload.
type Submission struct {
	Name     string
	Phone    string
	Email    string
	ZipCode  string
	Vehicle  string
	Services []string
}

// FallbackService is recorded when no service could be extracted.
const FallbackService = "General Inquiry"

var (
	nameKeys    = []string{"name", "Name", "full-name", "fullName", "customer-name"}
	phoneKeys   = []string{"phone", "Phone", "phone-number", "phoneNumber", "telephone", "Phone number", "Phone Number"}
	emailKeys   = []string{"email", "Email", "e-mail"}
	zipKeys     = []string{"zipCode", "zip-code", "zip", "location", "Location", "Location 2"}
	vehicleKeys = []string{"vehicle", "Vehicle", "vehicle-type", "vehicleType", "car"}
	serviceKeys = []string{"service", "Service", "service-type", "serviceType"}
)

// Parse normalizes a raw payload. It never fails: missing or malformed
// fields degrade to empty strings or sentinel values.
func Parse(data Payload) Submission {
	return Submission{
		Name:     extractName(data),
		Phone:    NormalizePhone(probe(data, phoneKeys)),
		Email:    probe(data, emailKeys),
		ZipCode:  probe(data, zipKeys),
		Vehicle:  probe(data, vehicleKeys),
		Services: extractServices(data),
	}
}

// NormalizePhone strips every non-digit character and keeps the last 10
// digits. Shorter inputs keep whatever digits are present.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		return digits[len(digits)-10:]
	}
	return digits
}

func extractName(data Payload) string {
	if name := probe(data, nameKeys); name != "" {
		return name
	}
	parts := make([]string, 0, 2)
	for _, key := range []string{"first-name", "last-name"} {
		if v := stringValue(data[key]); v != "" {
			parts = append(parts, v)
		}
	}
	if joined := strings.Join(parts, " "); joined != "" {
		return joined
	}
	return "Unknown"
}

func extractServices(data Payload) []string {
	var services []string

	// Checkbox-style fields, one per catalog entry.
	for _, entry := range serviceCatalog {
		for _, variant := range fieldVariants(entry) {
			if v := stringValue(data[variant]); v != "" && v != "false" {
				services = append(services, entry.Display)
				break
			}
		}
	}

	// Single free-form service field.
	if v := probe(data, serviceKeys); v != "" && !contains(services, v) {
		services = append(services, v)
	}

	if len(services) == 0 {
		return []string{FallbackService}
	}
	return services
}

// probe returns the first non-empty value among the given keys.
func probe(data Payload, keys []string) string {
	for _, key := range keys {
		if v := stringValue(data[key]); v != "" {
			return v
		}
	}
	return ""
}

// stringValue coerces a payload value to a string. JSON bodies may
// carry booleans or numbers where form-encoded bodies carry strings;
// both must probe identically.
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
