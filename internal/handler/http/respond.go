package http

import (
	"net/http"

	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

// writeError maps err to a status code and writes the uniform
// {"message": ...} envelope. Unknown errors are logged in full but answered
// with a generic message so internals never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = "internal server error"
	} else {
		log.Warn().Err(err).Int("status", status).Send()
	}

	utils.WriteJSON(w, models.Message{Message: message}, status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.Message{Message: message}, status)
}
