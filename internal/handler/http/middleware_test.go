package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/web-ghoul/Brainstorming-Server/models"
)

// ── Rate limiting ───────────────────────────────────────────────────────────

func TestRateLimit_RejectsRequestOverBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.RateLimit.Max = 3
	env := newTestEnv(t, ctrl, cfg)

	for i := 0; i < 3; i++ {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code, "request %d should be within budget", i+1)
	}

	rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too many requests", decodeMessage(t, rec).Message)
}

func TestRateLimit_ClientsAreIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.RateLimit.Max = 1
	env := newTestEnv(t, ctrl, cfg)

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.Header.Set("X-Forwarded-For", "10.0.0.1")
	require.Equal(t, http.StatusOK, env.do(first).Code)

	exhausted := httptest.NewRequest(http.MethodGet, "/", nil)
	exhausted.Header.Set("X-Forwarded-For", "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, env.do(exhausted).Code)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.Header.Set("X-Forwarded-For", "10.0.0.2")
	assert.Equal(t, http.StatusOK, env.do(other).Code)
}

// ── Body gate ───────────────────────────────────────────────────────────────

func TestBodyGate_OversizedBodyRejectedBeforeHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Server.MaxBodyBytes = 64
	env := newTestEnv(t, ctrl, cfg)

	oversized := `{"email":"` + strings.Repeat("a", 256) + `@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(oversized))
	req.Header.Set("Content-Type", "application/json")

	rec := env.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "request body too large", decodeMessage(t, rec).Message)
}

func TestBodyGate_MalformedJSONRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email": oops`))
	req.Header.Set("Content-Type", "application/json")

	rec := env.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON was passed", decodeMessage(t, rec).Message)
}

// ── Cross-origin policy ─────────────────────────────────────────────────────

func TestCORS_DisallowedOriginRejectedWithoutCookies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", models.Credentials{
		Email:    "mallory@example.com",
		Password: "hunter2hunter2",
		Name:     "Mallory",
	})
	req.Header.Set("Origin", "https://evil.example.com")

	rec := env.do(req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "origin not allowed", decodeMessage(t, rec).Message)
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowedOriginGetsCredentialHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/ideas", nil)
	req.Header.Set("Origin", "https://app.example.com")

	rec := env.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	header := rec.Header()
	assert.Equal(t, "https://app.example.com", header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", header.Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, header.Get("Access-Control-Expose-Headers"), "Set-Cookie")
}

func TestCORS_PreflightAnsweredLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/ideas", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := env.do(req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

// ── Sanitization ────────────────────────────────────────────────────────────

func TestSanitize_DropsOperatorKeysAndEscapesScripts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	cookie, _ := registerUser(t, env, "alice@example.com")

	payload := []byte(`{"title":"<script>alert(1)</script>","description":"fine","$where":"1==1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/ideas", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)

	rec := env.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var idea models.Idea
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &idea))
	assert.NotContains(t, idea.Title, "<script>")
	assert.Contains(t, idea.Title, "&lt;script&gt;")
	assert.Equal(t, "fine", idea.Description)
}

// ── Session and auth ────────────────────────────────────────────────────────

func TestAuth_PrivateRouteWithoutIdentityIs401JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/ideas", models.Idea{Title: "nope"}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.NotEmpty(t, decodeMessage(t, rec).Message)
}

func TestAuth_SessionCookieGrantsAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	cookie, user := registerUser(t, env, "bob@example.com")

	req := jsonRequest(t, http.MethodPost, "/api/ideas", models.Idea{Title: "cookie auth"})
	req.AddCookie(cookie)

	rec := env.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var idea models.Idea
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &idea))
	assert.Equal(t, user.UserID, idea.OwnerID)
}

func TestAuth_TamperedSessionCookieIsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	cookie, _ := registerUser(t, env, "carol@example.com")
	cookie.Value = cookie.Value + "tampered"

	req := jsonRequest(t, http.MethodPost, "/api/ideas", models.Idea{Title: "nope"})
	req.AddCookie(cookie)

	rec := env.do(req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_BearerTokenGrantsAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/auth/register", models.Credentials{
		Email:    "dave@example.com",
		Password: "hunter2hunter2",
		Name:     "Dave",
	}))
	require.Equal(t, http.StatusCreated, rec.Code)
	authHeader := rec.Header().Get("Authorization")
	require.NotEmpty(t, authHeader)

	req := jsonRequest(t, http.MethodPost, "/api/ideas", models.Idea{Title: "bearer auth"})
	req.Header.Set("Authorization", authHeader)

	rec = env.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestLogout_DestroysSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, testConfig())

	cookie, _ := registerUser(t, env, "erin@example.com")

	logoutReq := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	logoutReq.AddCookie(cookie)
	rec := env.do(logoutReq)
	require.Equal(t, http.StatusOK, rec.Code)

	req := jsonRequest(t, http.MethodPost, "/api/ideas", models.Idea{Title: "after logout"})
	req.AddCookie(cookie)
	rec = env.do(req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
