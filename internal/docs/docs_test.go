package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_ValidJSONWithCorePaths(t *testing.T) {
	payload, err := Document(Info{
		Title:       "Brainstorming API",
		Version:     "1.0.0",
		Description: "idea sharing backend",
		ServerURL:   "http://localhost:3000",
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(payload, &doc))

	assert.Equal(t, "3.0.0", doc["openapi"])

	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Brainstorming API", info["title"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	for _, path := range []string{
		"/api/auth/register",
		"/api/auth/login",
		"/api/auth/logout",
		"/api/auth/{provider}",
		"/api/ideas",
		"/api/ideas/{id}",
		"/api/users/me",
		"/uploadImage",
		"/uploadMultipleImages",
	} {
		assert.Contains(t, paths, path)
	}
}

func TestUI_PointsAtSpecURL(t *testing.T) {
	page := string(UI("Brainstorming API", "/api-docs/openapi.json"))

	assert.Contains(t, page, "<title>Brainstorming API</title>")
	assert.Contains(t, page, `"/api-docs/openapi.json"`)
	assert.Contains(t, page, "SwaggerUIBundle")
}
