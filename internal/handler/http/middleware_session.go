package http

import (
	"context"
	"net/http"
	"time"

	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/session"
	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
)

// withSession loads the session named by the signed cookie, refreshes its
// sliding TTL, and stores it in the request context. The stage never gates:
// requests without a valid session continue anonymously and the auth
// middleware decides whether that matters.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.cfg.Session.CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		sessionID, err := session.VerifyCookieValue(cookie.Value, h.cfg.Session.Secret)
		if err != nil {
			log.Warn().Err(err).Msg("session cookie rejected")
			session.ClearCookie(w, h.cookieOptions())
			next.ServeHTTP(w, r)
			return
		}

		sess, err := h.sessions.Get(r.Context(), sessionID)
		if err != nil {
			log.Err(err).Msg("session store unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if sess == nil {
			session.ClearCookie(w, h.cookieOptions())
			next.ServeHTTP(w, r)
			return
		}

		sess.ExpiresAt = time.Now().Add(h.cfg.Session.TTL)
		if err := h.sessions.Update(r.Context(), *sess); err != nil {
			log.Err(err).Msg("session refresh failed")
		} else {
			session.SetCookie(w, h.cookieOptions(), sess.SessionID, sess.ExpiresAt)
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) cookieOptions() session.CookieOptions {
	return session.CookieOptions{
		Name:   h.cfg.Session.CookieName,
		Secret: h.cfg.Session.Secret,
		Secure: h.cfg.Session.Secure,
	}
}

// sessionFromContext returns the established session, if any.
func sessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(utils.SessionCtxKey).(*session.Session)
	return sess
}
