package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/mock"
	"github.com/web-ghoul/Brainstorming-Server/internal/oauth"
	"github.com/web-ghoul/Brainstorming-Server/internal/ratelimit"
	"github.com/web-ghoul/Brainstorming-Server/internal/service"
	"github.com/web-ghoul/Brainstorming-Server/internal/session"
	"github.com/web-ghoul/Brainstorming-Server/internal/store"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

type testEnv struct {
	handler  *Handler
	router   *chi.Mux
	uploader *mock.MockImageUploader
	sessions *session.MemoryStore
}

func testConfig() *config.StructuredConfig {
	cfg := &config.StructuredConfig{}
	cfg.App.TokenSignKey = "test-sign-key"
	cfg.App.TokenIssuer = "brainstorming-server"
	cfg.App.TokenDuration = time.Hour
	cfg.App.Version = "test"
	cfg.Server.HTTPAddress = "localhost:3000"
	cfg.Server.MaxBodyBytes = 1 << 20
	cfg.Server.CORSOrigins = []string{"https://app.example.com"}
	cfg.Session.Secret = "test-session-secret"
	cfg.Session.CookieName = "session"
	cfg.Session.TTL = time.Hour
	cfg.RateLimit.Window = time.Minute
	cfg.RateLimit.Max = 1000
	return cfg
}

func newTestEnv(t *testing.T, ctrl *gomock.Controller, cfg *config.StructuredConfig) *testEnv {
	t.Helper()

	repos := store.MemoryRepositories()
	services := service.NewServices(&repos, cfg, logger.Nop())

	uploader := mock.NewMockImageUploader(ctrl)
	sessions := session.NewMemoryStore()
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{
		Window: cfg.RateLimit.Window,
		Max:    cfg.RateLimit.Max,
	})
	strategies := &oauth.Registry{}

	h, err := NewHandler(services, uploader, sessions, limiter, strategies, cfg, logger.Nop())
	require.NoError(t, err)

	return &testEnv{
		handler:  h,
		router:   h.Init(),
		uploader: uploader,
		sessions: sessions,
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// registerUser drives the real register endpoint and returns the session
// cookie plus the created user.
func registerUser(t *testing.T, env *testEnv, email string) (*http.Cookie, models.User) {
	t.Helper()

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/auth/register", models.Credentials{
		Email:    email,
		Password: "hunter2hunter2",
		Name:     "Test User",
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session" && cookie.Value != "" {
			return cookie, user
		}
	}
	t.Fatal("no session cookie issued")
	return nil, models.User{}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) models.Message {
	t.Helper()
	var msg models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	return msg
}
