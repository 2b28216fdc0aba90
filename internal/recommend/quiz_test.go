package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resenia/resenia-server/internal/domain"
	apperrors "github.com/resenia/resenia-server/internal/errors"
)

func quizBook(id, title, description string) *domain.Book {
	return &domain.Book{
		Timestamps:  domain.Timestamps{ID: id},
		Title:       title,
		Description: description,
	}
}

func TestMatchProfile(t *testing.T) {
	profile := &domain.QuizProfile{
		FavoriteGenre: "fantasía",
		ActionLevel:   domain.ActionLevelHigh,
		Keywords:      []string{"dragón"},
	}

	catalog := []*domain.Book{
		quizBook("book-1", "El Reino", "Una fantasía épica con un dragón milenario"),
		quizBook("book-2", "Recetarium", "Recetas de cocina tradicional"),
		quizBook("book-3", "Alas", "Crónica de un dragón sin jinete"),
	}

	got, err := MatchProfile(profile, catalog)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Genre plus keyword: 3 + 2.
	assert.Equal(t, "book-1", got[0].BookID)
	assert.Equal(t, "El Reino", got[0].Title)
	assert.Equal(t, 5, got[0].Score)

	assert.Equal(t, "book-3", got[1].BookID)
	assert.Equal(t, 2, got[1].Score)
}

func TestMatchProfile_NilProfile(t *testing.T) {
	_, err := MatchProfile(nil, []*domain.Book{quizBook("book-1", "t", "d")})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrPreconditionFailed))
}

func TestMatchProfile_ZeroScoresExcluded(t *testing.T) {
	profile := &domain.QuizProfile{FavoriteGenre: "terror", Keywords: []string{"fantasma"}}
	catalog := []*domain.Book{
		quizBook("book-1", "Mar", "Navegación a vela por el Mediterráneo"),
		quizBook("book-2", "Niebla", "Un fantasma recorre la mansión"),
	}

	got, err := MatchProfile(profile, catalog)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "book-2", got[0].BookID)
	for _, m := range got {
		assert.Positive(t, m.Score)
	}
}

func TestMatchProfile_CaseInsensitive(t *testing.T) {
	profile := &domain.QuizProfile{FavoriteGenre: "FANTASÍA", Keywords: []string{"DRAGÓN"}}
	catalog := []*domain.Book{
		quizBook("book-1", "El Reino", "Fantasía con Dragón"),
	}

	got, err := MatchProfile(profile, catalog)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Score)
}

func TestMatchProfile_MultipleKeywordsCumulative(t *testing.T) {
	profile := &domain.QuizProfile{
		FavoriteGenre: "aventura",
		Keywords:      []string{"mapa", "tesoro", "isla"},
	}
	catalog := []*domain.Book{
		quizBook("book-1", "La Isla", "Una aventura con mapa, tesoro e isla"),
		quizBook("book-2", "Rumbo", "Una aventura con mapa"),
	}

	got, err := MatchProfile(profile, catalog)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 9, got[0].Score)
	assert.Equal(t, 5, got[1].Score)
}

func TestMatchProfile_TiesKeepCatalogOrder(t *testing.T) {
	profile := &domain.QuizProfile{FavoriteGenre: "fantasía"}
	catalog := []*domain.Book{
		quizBook("book-1", "Uno", "fantasía clásica"),
		quizBook("book-2", "Dos", "fantasía moderna"),
		quizBook("book-3", "Tres", "fantasía oscura"),
	}

	got, err := MatchProfile(profile, catalog)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "book-1", got[0].BookID)
	assert.Equal(t, "book-2", got[1].BookID)
	assert.Equal(t, "book-3", got[2].BookID)
}

func TestMatchProfile_TruncatesToTen(t *testing.T) {
	profile := &domain.QuizProfile{FavoriteGenre: "fantasía"}
	catalog := make([]*domain.Book, 0, 15)
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("book-%d", i)
		catalog = append(catalog, quizBook(id, id, "fantasía"))
	}

	got, err := MatchProfile(profile, catalog)
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestMatchProfile_EmptyFieldsScoreNothing(t *testing.T) {
	profile := &domain.QuizProfile{FavoriteGenre: "", Keywords: []string{""}}
	catalog := []*domain.Book{quizBook("book-1", "t", "cualquier descripción")}

	got, err := MatchProfile(profile, catalog)
	require.NoError(t, err)
	assert.Empty(t, got)
}
