package http

import (
	"net/http"

	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

func (h *Handler) banner(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Banner{
		Message: "🗺️ Welcome to the Treasure Hunt API! 🏴‍☠️",
		Clues: []string{
			"🌴 Follow the path of 'api/' to start the journey.",
			"🦜 Look out for the 'X marks the spot' at each endpoint!",
			"⚓ More treasures await as you navigate the API seas!",
		},
		Disclaimer:    "Remember, only true adventurers can unlock the secrets...",
		Documentation: "/api-docs",
	}, http.StatusOK)
}

func (h *Handler) docsUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.docsPage)
}

func (h *Handler) openAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(h.openapiDoc)
}
