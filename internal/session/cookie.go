// SPDX-License-Identifier: Apache-2.0

package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"
)

// ErrBadCookieSignature is returned by VerifyCookieValue when a cookie value
// fails HMAC verification, i.e. it was not issued by this server or was
// tampered with.
var ErrBadCookieSignature = errors.New("session: invalid cookie signature")

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	// Name is the cookie name.
	Name string

	// Secret authenticates cookie values. The session identifier is
	// stored as "<id>.<hmac-sha256(id)>".
	Secret string

	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// SignCookieValue returns the on-the-wire cookie value for a session
// identifier: the identifier plus its HMAC-SHA256 tag.
func SignCookieValue(sessionID, secret string) string {
	return sessionID + "." + signature(sessionID, secret)
}

// VerifyCookieValue splits and verifies a cookie value produced by
// [SignCookieValue], returning the embedded session identifier.
func VerifyCookieValue(value, secret string) (string, error) {
	sessionID, tag, found := strings.Cut(value, ".")
	if !found || sessionID == "" {
		return "", ErrBadCookieSignature
	}

	if !hmac.Equal([]byte(tag), []byte(signature(sessionID, secret))) {
		return "", ErrBadCookieSignature
	}

	return sessionID, nil
}

func signature(sessionID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}

// SetCookie issues the session cookie to the client.
func SetCookie(w http.ResponseWriter, opts CookieOptions, sessionID string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    SignCookieValue(sessionID, opts.Secret),
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
