package http

import (
	"net/http"

	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.Health(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("error writing health status")
	}
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.Status(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.status").Msg("error writing bot status")
	}
}
