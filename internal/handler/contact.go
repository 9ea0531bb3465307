package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/mkravets/portfolio-api/internal/api"
	"github.com/mkravets/portfolio-api/internal/domain"
	"github.com/mkravets/portfolio-api/internal/errors"
	"github.com/mkravets/portfolio-api/internal/middleware/metrics"
	"github.com/mkravets/portfolio-api/internal/utils"
)

// SendContactMessage handles the contact form. Validation failures come
// back field-tagged so the form can highlight the offending input; a
// delivery failure is a generic retryable error, the message is not
// queued.
func (h *Handler) SendContactMessage(w http.ResponseWriter, r *http.Request) {
	var body api.ContactRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	message, err := h.contact.SendMessage(r.Context(), domain.ContactInput{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	})
	if err != nil {
		var validationErr *errors.ValidationError
		if stderrors.As(err, &validationErr) {
			metrics.ObserveContactSubmission("invalid")
			writeJSON(w, http.StatusBadRequest, api.ContactResponse{
				Success: false,
				Field:   validationErr.Field,
				Error:   validationErr.Message,
			})
			return
		}

		metrics.ObserveContactSubmission("failed")
		writeJSON(w, http.StatusBadGateway, api.ContactResponse{
			Success: false,
			Error:   "Failed to send message, please try again later",
		})
		return
	}

	metrics.ObserveContactSubmission("sent")
	writeJSON(w, http.StatusCreated, api.ContactResponse{
		Success:   true,
		MessageID: message.ID,
	})
}
