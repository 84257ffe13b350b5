package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-workers-bot/internal/app"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/utils"
	"github.com/MKhiriev/go-workers-bot/models"
)

type errorStatus struct {
	status  int
	message string
}

// A wrong webhook secret is answered like an unknown route.
var errorStatusMap = map[error]errorStatus{
	ErrInvalidWebhookSecret: {status: http.StatusNotFound, message: app.MsgNotFound},
	ErrInvalidUpdate:        {status: http.StatusBadRequest, message: app.MsgInvalidUpdate},
}

func statusFromError(err error) errorStatus {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return errorStatus{status: http.StatusInternalServerError, message: app.MsgInternalServerError}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := statusFromError(err)
	writeErrorResponse(w, r, mapped.status, mapped.message)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := models.ErrorResponse{Error: message, Path: r.URL.Path}
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeErrorResponse").Msg("error writing error response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, r, http.StatusNotFound, app.MsgNotFound)
}
