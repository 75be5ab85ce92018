// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/koji-m/Bluedog/internal/utils"
)

// MethodNotAllowed returns the router's 405 handler. It answers with a JSON
// error body and, when the request path is a literal route pattern, an Allow
// header listing the methods registered for it.
func MethodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
		}
		if len(allowed) > 0 {
			slices.Sort(allowed)
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, "route not found", http.StatusNotFound)
}
