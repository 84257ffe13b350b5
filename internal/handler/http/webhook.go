// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/utils"
	"github.com/MKhiriev/go-workers-bot/models"
	"github.com/go-chi/chi/v5"
)

// webhook accepts one update from Telegram. The update is handed off for
// asynchronous processing and acknowledged with 200 right away, so a slow
// remote call never makes Telegram redeliver.
func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token := chi.URLParam(r, "token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.webhookSecret)) != 1 {
		log.Warn().Err(ErrInvalidWebhookSecret).Str("func", "*Handler.webhook").Send()
		h.writeError(w, r, ErrInvalidWebhookSecret)
		return
	}

	var update models.Update
	if err := utils.DecodeJSON(r, &update); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidUpdate, err)
		log.Warn().Err(err).Str("func", "*Handler.webhook").Send()
		h.writeError(w, r, err)
		return
	}

	h.updates.HandleUpdate(r.Context(), update)
	w.WriteHeader(http.StatusOK)
}
