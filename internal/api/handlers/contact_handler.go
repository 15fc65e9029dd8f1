package handlers

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"github.com/megahand-az/megahand-be/internal/httpx"
	"github.com/megahand-az/megahand-be/internal/mailer"
	"github.com/rs/zerolog/log"
)

// ContactHandler forwards contact form submissions by email.
type ContactHandler struct {
	mailer mailer.Mailer
	from   string
	to     string
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(m mailer.Mailer, from, to string) *ContactHandler {
	return &ContactHandler{mailer: m, from: from, to: to}
}

// ContactPayload defines the structure of a contact form submission.
type ContactPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Send validates the submission and dispatches it to the configured inbox.
// The mailer is never invoked for an invalid body.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var payload ContactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := httpx.Validate(payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	msg := mailer.Message{
		To:      h.to,
		From:    h.from,
		ReplyTo: payload.Email,
		Subject: fmt.Sprintf("Contact form: %s", payload.Subject),
		HTML: fmt.Sprintf("<p><strong>From:</strong> %s (%s)</p><p>%s</p>",
			html.EscapeString(payload.Name), html.EscapeString(payload.Email), html.EscapeString(payload.Message)),
	}
	if err := h.mailer.Send(r.Context(), msg); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to send contact email")
		httpx.Error(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	httpx.Respond(w, http.StatusOK, map[string]string{"message": "Message sent successfully"})
}
