package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

func (h *Handler) listIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.services.IdeaService.ListIdeas(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if ideas == nil {
		ideas = []models.Idea{}
	}

	utils.WriteJSON(w, ideas, http.StatusOK)
}

func (h *Handler) getIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := h.services.IdeaService.GetIdea(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, idea, http.StatusOK)
}

func (h *Handler) createIdea(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var idea models.Idea
	if err := json.NewDecoder(r.Body).Decode(&idea); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	created, err := h.services.IdeaService.CreateIdea(r.Context(), userID, idea)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateIdea(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var update models.IdeaUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.IdeaService.UpdateIdea(r.Context(), chi.URLParam(r, "id"), userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteIdea(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	if err := h.services.IdeaService.DeleteIdea(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "idea deleted", http.StatusOK)
}
