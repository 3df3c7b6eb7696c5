package http

import (
	"context"
	"net/http"
)

// withTimeout bounds each request with the configured deadline so database
// and upload calls further down the chain are cancelled together with the
// request. A zero timeout disables the deadline.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.Server.RequestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Server.RequestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
