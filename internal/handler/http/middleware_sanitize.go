package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/web-ghoul/Brainstorming-Server/internal/sanitize"
)

// withSanitize scrubs untrusted input after the body gate has buffered it:
// query values are HTML-escaped, and JSON bodies additionally lose
// '$'-prefixed and dotted object keys before any handler reads them.
func (h *Handler) withSanitize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.RawQuery) > 0 {
			r.URL.RawQuery = sanitize.Values(r.URL.Query()).Encode()
		}

		if isJSONRequest(r) && r.Body != nil && r.ContentLength > 0 {
			raw, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, r, ErrInvalidJSON)
				return
			}

			clean, err := sanitize.JSONBody(raw)
			if err != nil {
				writeError(w, r, ErrInvalidJSON)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(clean))
			r.ContentLength = int64(len(clean))
		}

		next.ServeHTTP(w, r)
	})
}
