package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuiz_SubmitAndGet(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerTestUser(t, "ana@example.com")

	resp := ts.api.Post("/api/v1/quiz",
		"Authorization: Bearer "+token,
		map[string]any{
			"favorite_genre": "fantasía",
			"action_level":   "high",
			"keywords":       []string{"dragón", "magia"},
		})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = ts.api.Get("/api/v1/quiz/me", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)

	var profile QuizProfileResponse
	decodeBody(t, resp.Body.Bytes(), &profile)
	assert.Equal(t, "fantasía", profile.FavoriteGenre)
	assert.Equal(t, "high", profile.ActionLevel)
	assert.Equal(t, []string{"dragón", "magia"}, profile.Keywords)
}

func TestQuiz_GetWithoutProfile(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerTestUser(t, "ana@example.com")

	resp := ts.api.Get("/api/v1/quiz/me", "Authorization: Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestQuiz_InvalidActionLevel(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerTestUser(t, "ana@example.com")

	resp := ts.api.Post("/api/v1/quiz",
		"Authorization: Bearer "+token,
		map[string]any{
			"favorite_genre": "fantasía",
			"action_level":   "extremo",
		})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestQuiz_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/quiz", map[string]any{
		"favorite_genre": "fantasía",
		"action_level":   "low",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
