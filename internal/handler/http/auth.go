package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/oauth"
	"github.com/web-ghoul/Brainstorming-Server/internal/session"
	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

const oauthStateCookie = "oauth_state"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.establishSession(w, r, user); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.establishSession(w, r, user); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("user logged in")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if sess := sessionFromContext(r.Context()); sess != nil {
		if err := h.sessions.Delete(r.Context(), sess.SessionID); err != nil {
			logger.FromRequest(r).Err(err).Msg("session delete failed")
		}
	}

	session.ClearCookie(w, h.cookieOptions())
	writeMessage(w, "logged out", http.StatusOK)
}

func (h *Handler) oauthRedirect(w http.ResponseWriter, r *http.Request) {
	strategy, err := h.strategies.Get(chi.URLParam(r, "provider"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	state := oauth.GenerateState()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/api/auth",
		MaxAge:   int((5 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, strategy.AuthCodeURL(state), http.StatusFound)
}

func (h *Handler) oauthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	strategy, err := h.strategies.Get(chi.URLParam(r, "provider"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		writeError(w, r, ErrInvalidOAuthState)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Path: "/api/auth", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, r, fmt.Errorf("%w: missing code", ErrOAuthExchangeFailed))
		return
	}

	identity, err := strategy.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("provider", strategy.Name()).Msg("oauth exchange failed")
		writeError(w, r, ErrOAuthExchangeFailed)
		return
	}

	user, err := h.services.AuthService.ResolveExternal(ctx, identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.establishSession(w, r, user); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Str("provider", strategy.Name()).Msg("oauth login")
	utils.WriteJSON(w, user, http.StatusOK)
}

// establishSession creates a server-side session for user, issues the
// signed session cookie, and attaches a Bearer token for clients that
// prefer header auth over cookies.
func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, user models.User) error {
	sessionID, err := session.GenerateID()
	if err != nil {
		return fmt.Errorf("generate session id: %w", err)
	}

	sess := session.Session{
		SessionID: sessionID,
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(h.cfg.Session.TTL),
	}
	if err := h.sessions.Create(r.Context(), sess); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	session.SetCookie(w, h.cookieOptions(), sess.SessionID, sess.ExpiresAt)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		return fmt.Errorf("create token: %w", err)
	}
	w.Header().Set("Authorization", "Bearer "+token.SignedString)

	return nil
}
