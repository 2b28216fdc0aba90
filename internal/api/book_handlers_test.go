package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooks_CreateAndGet(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerTestUser(t, "ana@example.com")

	resp := ts.api.Post("/api/v1/books",
		"Authorization: Bearer "+token,
		map[string]any{
			"title":       "El Reino",
			"author":      "C. Ruiz",
			"description": "Magia y aventuras en un mundo misterioso",
		})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var created BookResponse
	decodeBody(t, resp.Body.Bytes(), &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "El Reino", created.Title)

	resp = ts.api.Get("/api/v1/books/" + created.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	var got BookResponse
	decodeBody(t, resp.Body.Bytes(), &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "C. Ruiz", got.Author)
}

func TestBooks_CreateRequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/books", map[string]any{
		"title": "El Reino",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestBooks_CreateValidation(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerTestUser(t, "ana@example.com")

	resp := ts.api.Post("/api/v1/books",
		"Authorization: Bearer "+token,
		map[string]any{"title": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBooks_List(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerTestUser(t, "ana@example.com")

	ts.createTestBook(t, token, "Uno", "primera descripción")
	ts.createTestBook(t, token, "Dos", "segunda descripción")

	resp := ts.api.Get("/api/v1/books")
	require.Equal(t, http.StatusOK, resp.Code)

	var body BookListResponse
	decodeBody(t, resp.Body.Bytes(), &body)
	assert.Equal(t, 2, body.Total)
	assert.Len(t, body.Books, 2)
}

func TestBooks_GetErrors(t *testing.T) {
	ts := setupTestServer(t)

	// Malformed ID fails before any lookup.
	resp := ts.api.Get("/api/v1/books/libro!!!")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// Well formed but absent.
	resp = ts.api.Get("/api/v1/books/book-aaaaaaaaaaaaaaaaaaaaa")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBooks_UpdateAndDelete(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerTestUser(t, "ana@example.com")
	bookID := ts.createTestBook(t, token, "Uno", "descripción original")

	resp := ts.api.Put("/api/v1/books/"+bookID,
		"Authorization: Bearer "+token,
		map[string]any{
			"title":       "Uno, edición revisada",
			"description": "descripción nueva",
		})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated BookResponse
	decodeBody(t, resp.Body.Bytes(), &updated)
	assert.Equal(t, "Uno, edición revisada", updated.Title)

	resp = ts.api.Delete("/api/v1/books/"+bookID, "Authorization: Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/books/" + bookID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBookSummary(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerTestUser(t, "ana@example.com")
	bookID := ts.createTestBook(t, token, "El Reino", "fantasía épica")

	for _, text := range []string{
		"Me encantó, genial y maravilloso",
		"Fue aburrido y terrible",
	} {
		resp := ts.api.Post("/api/v1/books/"+bookID+"/reviews",
			"Authorization: Bearer "+token,
			map[string]any{"text": text})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	}

	resp := ts.api.Get("/api/v1/books/" + bookID + "/summary")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Contains(t, resp.Body.String(), `"total":2`)
	assert.Contains(t, resp.Body.String(), `"positive_pct":50`)
	assert.Contains(t, resp.Body.String(), `"negative_pct":50`)
}

func TestBookSummary_EmptyBook(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerTestUser(t, "ana@example.com")
	bookID := ts.createTestBook(t, token, "Sin Reseñas", "nada todavía")

	resp := ts.api.Get("/api/v1/books/" + bookID + "/summary")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":0`)
	assert.Contains(t, resp.Body.String(), `"keywords":[]`)
}
