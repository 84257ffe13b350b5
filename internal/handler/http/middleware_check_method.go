// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-workers-bot/internal/app"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. Instead of
// chi's default 405 it answers with the JSON 404 body used for unknown
// routes, so probing /health with POST looks the same as probing a path that
// does not exist.
//
// If the requested method is registered for a route whose pattern equals
// the request path, the request is passed back to the router. Parameterised
// patterns such as the webhook route are not expanded during this check.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeErrorResponse(w, r, http.StatusNotFound, app.MsgNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
