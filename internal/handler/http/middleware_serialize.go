package http

import "net/http"

func (h *Handler) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
