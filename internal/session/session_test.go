package session

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCookieValueRoundTrip(t *testing.T) {
	value := SignCookieValue("abc123", "secret")

	sessionID, err := VerifyCookieValue(value, "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", sessionID)
}

func TestVerifyCookieValueFailures(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "no separator", value: "abc123"},
		{name: "empty id", value: ".deadbeef"},
		{name: "tampered id", value: "evil." + SignCookieValue("abc123", "secret")},
		{name: "wrong secret", value: SignCookieValue("abc123", "other")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyCookieValue(tt.value, "secret")
			assert.ErrorIs(t, err, ErrBadCookieSignature)
		})
	}
}

func TestSetAndClearCookie(t *testing.T) {
	opts := CookieOptions{Name: "session", Secret: "secret", Secure: true}

	w := httptest.NewRecorder()
	SetCookie(w, opts, "abc123", time.Now().Add(time.Hour))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)

	sessionID, err := VerifyCookieValue(cookies[0].Value, "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", sessionID)

	w = httptest.NewRecorder()
	ClearCookie(w, opts)

	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := Session{
		SessionID: "sid-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)

	// refresh
	s.ExpiresAt = time.Now().Add(2 * time.Hour)
	require.NoError(t, store.Update(ctx, s))

	require.NoError(t, store.Delete(ctx, "sid-1"))

	got, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreRejectsIncompleteSession(t *testing.T) {
	store := NewMemoryStore()
	err := store.Create(context.Background(), Session{SessionID: "sid-only"})
	assert.Error(t, err)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	current := time.Now()

	store := NewMemoryStore()
	store.now = func() time.Time { return current }

	s := Session{
		SessionID: "sid-1",
		UserID:    "user-1",
		ExpiresAt: current.Add(time.Minute),
	}
	require.NoError(t, store.Create(ctx, s))

	current = current.Add(2 * time.Minute)

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got, "expired session must not be returned")
}

func TestMemoryStorePurge(t *testing.T) {
	ctx := context.Background()
	current := time.Now()

	store := NewMemoryStore()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Create(ctx, Session{
		SessionID: "old", UserID: "u", ExpiresAt: current.Add(time.Minute),
	}))
	require.NoError(t, store.Create(ctx, Session{
		SessionID: "fresh", UserID: "u", ExpiresAt: current.Add(time.Hour),
	}))

	current = current.Add(30 * time.Minute)
	store.Purge()

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.NotContains(t, store.sessions, "old")
	assert.Contains(t, store.sessions, "fresh")
}

func TestMemoryStorePurgeEvery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	current := time.Now()

	store := NewMemoryStore()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Create(ctx, Session{
		SessionID: "stale", UserID: "u", ExpiresAt: current.Add(time.Minute),
	}))

	current = current.Add(2 * time.Minute)
	go store.PurgeEvery(ctx, time.Millisecond)

	assert.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		return len(store.sessions) == 0
	}, time.Second, 5*time.Millisecond)
}
