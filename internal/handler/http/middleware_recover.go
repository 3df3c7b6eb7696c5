package http

import (
	"net/http"

	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

// withRecover is the outermost pipeline stage. A panic anywhere downstream
// is caught exactly once, logged with the request-scoped logger, and turned
// into a 500 envelope that leaks nothing about the failure.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromRequest(r).Error().
					Any("panic", rec).
					Str("uri", r.RequestURI).
					Msg("recovered from panic")
				utils.WriteJSON(w, models.Message{Message: "internal server error"}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
