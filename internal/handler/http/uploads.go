package http

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

// multipartFileField is the form field name clients attach their files to.
const multipartFileField = "files"

// uploadSingle accepts {"image": "<base64>"} and answers with the hosted
// URL as a plain text body.
func (h *Handler) uploadSingle(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}
	if payload.Image == "" {
		writeError(w, r, ErrNoFilesUploaded)
		return
	}

	content, err := decodeImagePayload(payload.Image)
	if err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	url, err := h.uploader.UploadImage(r.Context(), models.File{Name: "image", Content: content})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, url)
}

// uploadBatch accepts a multipart form with one or more files and answers
// with the hosted URLs as a JSON array, in input order.
func (h *Handler) uploadBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.cfg.Server.MaxBodyBytes); err != nil {
		writeError(w, r, ErrBodyTooLarge)
		return
	}

	headers := r.MultipartForm.File[multipartFileField]
	if len(headers) == 0 {
		writeError(w, r, ErrNoFilesUploaded)
		return
	}

	files := make([]models.File, 0, len(headers))
	for _, header := range headers {
		part, err := header.Open()
		if err != nil {
			writeError(w, r, ErrNoFilesUploaded)
			return
		}

		content, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			writeError(w, r, ErrBodyTooLarge)
			return
		}

		files = append(files, models.File{Name: header.Filename, Content: content})
	}

	urls, err := h.uploader.UploadImages(r.Context(), files)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, urls, http.StatusOK)
}

// decodeImagePayload accepts either a bare base64 string or a data URI
// ("data:image/png;base64,....").
func decodeImagePayload(payload string) ([]byte, error) {
	if strings.HasPrefix(payload, "data:") {
		if _, rest, found := strings.Cut(payload, ","); found {
			payload = rest
		}
	}
	return base64.StdEncoding.DecodeString(payload)
}
