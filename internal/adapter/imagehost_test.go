// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

func newTestUploader(t *testing.T, serverURL string) *imageHostUploader {
	t.Helper()
	u, err := NewImageHostUploader(config.ImageHost{
		BaseURL: serverURL,
		APIKey:  "test-api-key",
	}, logger.Nop())
	require.NoError(t, err)
	return u.(*imageHostUploader)
}

func hostReply(w http.ResponseWriter, url string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"data":{"url":%q},"success":true,"status":200}`, url)
}

// ── UploadImage ─────────────────────────────────────────────────────────────

func TestUploadImage_Success(t *testing.T) {
	content := []byte("fake-png-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("key"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "photo.png", r.PostFormValue("name"))
		assert.Equal(t, base64.StdEncoding.EncodeToString(content), r.PostFormValue("image"))

		hostReply(w, "https://i.example.com/abc.png")
	}))
	defer srv.Close()

	u := newTestUploader(t, srv.URL)
	url, err := u.UploadImage(context.Background(), models.File{Name: "photo.png", Content: content})

	require.NoError(t, err)
	assert.Equal(t, "https://i.example.com/abc.png", url)
}

func TestUploadImage_EmptyFile(t *testing.T) {
	u := newTestUploader(t, "http://unused.invalid")

	_, err := u.UploadImage(context.Background(), models.File{Name: "empty.png"})
	require.ErrorIs(t, err, ErrNoFileProvided)
}

func TestUploadImage_HostRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"status":400}`))
	}))
	defer srv.Close()

	u := newTestUploader(t, srv.URL)
	_, err := u.UploadImage(context.Background(), models.File{Name: "bad.png", Content: []byte("x")})

	require.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadImage_SuccessFalseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"status":200}`))
	}))
	defer srv.Close()

	u := newTestUploader(t, srv.URL)
	_, err := u.UploadImage(context.Background(), models.File{Name: "odd.png", Content: []byte("x")})

	require.ErrorIs(t, err, ErrUploadFailed)
}

// ── UploadImages ────────────────────────────────────────────────────────────

func TestUploadImages_PreservesInputOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		hostReply(w, "https://i.example.com/"+r.PostFormValue("name"))
	}))
	defer srv.Close()

	u := newTestUploader(t, srv.URL)
	files := []models.File{
		{Name: "first.png", Content: []byte("1")},
		{Name: "second.png", Content: []byte("2")},
		{Name: "third.png", Content: []byte("3")},
	}

	urls, err := u.UploadImages(context.Background(), files)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://i.example.com/first.png",
		"https://i.example.com/second.png",
		"https://i.example.com/third.png",
	}, urls)
}

func TestUploadImages_OneFailureFailsTheBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostFormValue("name") == "poison.png" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		hostReply(w, "https://i.example.com/ok.png")
	}))
	defer srv.Close()

	u := newTestUploader(t, srv.URL)
	files := []models.File{
		{Name: "ok-1.png", Content: []byte("1")},
		{Name: "poison.png", Content: []byte("2")},
		{Name: "ok-2.png", Content: []byte("3")},
	}

	urls, err := u.UploadImages(context.Background(), files)

	require.ErrorIs(t, err, ErrUploadFailed)
	assert.Nil(t, urls)
	assert.Contains(t, err.Error(), "poison.png")
}

func TestUploadImages_EmptyBatch(t *testing.T) {
	u := newTestUploader(t, "http://unused.invalid")

	_, err := u.UploadImages(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoFileProvided)
}

func TestUploadImages_ConcurrencyCap(t *testing.T) {
	var inFlight, peak atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		require.NoError(t, r.ParseForm())
		hostReply(w, "https://i.example.com/x.png")
	}))
	defer srv.Close()

	u := newTestUploader(t, srv.URL)
	files := make([]models.File, 16)
	for i := range files {
		files[i] = models.File{Name: fmt.Sprintf("f-%d.png", i), Content: []byte{byte(i + 1)}}
	}

	_, err := u.UploadImages(context.Background(), files)

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(maxConcurrentUploads))
}
