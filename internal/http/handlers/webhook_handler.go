package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/immaculate/crm-backend/internal/http/response"
	"github.com/immaculate/crm-backend/internal/webhook"
	"github.com/immaculate/crm-backend/pkg/logger"
)

type webhookAck struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	BookingID  string `json:"bookingId"`
	CustomerID string `json:"customerId"`
}

// ingestWebhook accepts a form submission as JSON or form-encoded
// key/value pairs with an arbitrary schema. Requests without a usable
// content type get one JSON parse attempt before rejection.
func (h *Handler) ingestWebhook(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	logger.DebugContext(r.Context(), "Webhook received", "fields", len(payload))

	booking, customer, err := h.intake.Ingest(r.Context(), payload)
	if err != nil {
		logger.ErrorContext(r.Context(), "Webhook processing failed", "error", err)
		response.InternalErrorWithDetails(w, "Failed to process booking", err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, webhookAck{
		Success:    true,
		Message:    "Booking received",
		BookingID:  booking.ID,
		CustomerID: customer.ID,
	})
}

func decodePayload(w http.ResponseWriter, r *http.Request) (webhook.Payload, bool) {
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.Contains(contentType, "application/json"):
		var payload webhook.Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			response.BadRequest(w, "Invalid request format")
			return nil, false
		}
		return payload, true

	case strings.Contains(contentType, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			response.BadRequest(w, "Invalid request format")
			return nil, false
		}
		payload := make(webhook.Payload, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				payload[key] = values[0]
			}
		}
		return payload, true

	default:
		// Some form builders omit the content type; try JSON before
		// rejecting.
		body, err := io.ReadAll(r.Body)
		if err != nil {
			response.BadRequest(w, "Invalid request format")
			return nil, false
		}
		var payload webhook.Payload
		if err := json.Unmarshal(body, &payload); err != nil {
			response.BadRequest(w, "Invalid request format")
			return nil, false
		}
		return payload, true
	}
}

// webhookInfo lets the form builder verify the endpoint is reachable.
func (h *Handler) webhookInfo(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"message":   "Immaculate Car Wash CRM Webhook",
		"usage":     "POST form data to this endpoint",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
