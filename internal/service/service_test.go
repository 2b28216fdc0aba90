package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/resenia/resenia-server/internal/auth"
	"github.com/resenia/resenia-server/internal/domain"
	"github.com/resenia/resenia-server/internal/lexicon"
	"github.com/resenia/resenia-server/internal/recommend"
	"github.com/resenia/resenia-server/internal/store"
	"github.com/resenia/resenia-server/internal/vectorspace"
)

// testServices bundles the services under test over one temp store.
type testServices struct {
	store     *store.Store
	auth      *AuthService
	sessions  *SessionService
	books     *BookService
	reviews   *ReviewService
	quiz      *QuizService
	recommend *RecommendationService
}

func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "resenia-service-test-*")
	require.NoError(t, err)

	st, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	})

	tokenService, err := auth.NewTokenService(strings.Repeat("ab", 32), 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	tokenizer := vectorspace.NewTokenizer(vectorspace.SpanishStopWords())
	classifier := lexicon.NewClassifier(lexicon.Spanish())
	similarity := recommend.NewSimilarity(tokenizer, 5)

	sessions := NewSessionService(st, tokenService, nil)
	return &testServices{
		store:     st,
		auth:      NewAuthService(st, tokenService, sessions, nil),
		sessions:  sessions,
		books:     NewBookService(st, tokenizer, nil),
		reviews:   NewReviewService(st, classifier, nil),
		quiz:      NewQuizService(st, nil),
		recommend: NewRecommendationService(st, similarity, nil),
	}
}

func (ts *testServices) mustCreateBook(t *testing.T, title, description string) *domain.Book {
	t.Helper()
	book, err := ts.books.CreateBook(context.Background(), CreateBookRequest{
		Title:       title,
		Author:      "Autora",
		Description: description,
	})
	require.NoError(t, err)
	return book
}

func (ts *testServices) mustCreateReview(t *testing.T, bookID, text string) *domain.Review {
	t.Helper()
	review, err := ts.reviews.CreateReview(context.Background(), bookID, CreateReviewRequest{
		Username: "lectora",
		Text:     text,
	})
	require.NoError(t, err)
	return review
}

func (ts *testServices) mustRegister(t *testing.T, email string) *AuthResponse {
	t.Helper()
	resp, err := ts.auth.Register(context.Background(), RegisterRequest{
		Email:       email,
		Password:    "contraseña-larga",
		DisplayName: "Lectora",
	})
	require.NoError(t, err)
	return resp
}
