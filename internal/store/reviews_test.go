package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resenia/resenia-server/internal/domain"
)

func TestCreateReview(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateBook(ctx, testBook("book-1", "El Hobbit")))

	review := testReview("review-1", "book-1", "Genial historia")
	require.NoError(t, s.CreateReview(ctx, review))

	got, err := s.GetReview(ctx, "review-1")
	require.NoError(t, err)
	assert.Equal(t, "book-1", got.BookID)
	assert.Equal(t, "Genial historia", got.Text)
	assert.Equal(t, domain.SentimentPositive, got.SentimentLabel)
	assert.InDelta(t, 1.0, got.SentimentScore, 1e-9)
}

func TestCreateReview_BookMissing(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	err := s.CreateReview(context.Background(), testReview("review-1", "book-ghost", "texto"))
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestCreateReview_Duplicate(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateBook(ctx, testBook("book-1", "El Hobbit")))
	require.NoError(t, s.CreateReview(ctx, testReview("review-1", "book-1", "uno")))

	err := s.CreateReview(ctx, testReview("review-1", "book-1", "dos"))
	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestListReviewsByBook(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateBook(ctx, testBook("book-1", "El Hobbit")))
	require.NoError(t, s.CreateBook(ctx, testBook("book-2", "Dune")))

	require.NoError(t, s.CreateReview(ctx, testReview("review-a", "book-1", "uno")))
	require.NoError(t, s.CreateReview(ctx, testReview("review-b", "book-1", "dos")))
	require.NoError(t, s.CreateReview(ctx, testReview("review-c", "book-2", "otro")))

	reviews, err := s.ListReviewsByBook(ctx, "book-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "review-a", reviews[0].ID)
	assert.Equal(t, "review-b", reviews[1].ID)

	reviews, err = s.ListReviewsByBook(ctx, "book-2")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "review-c", reviews[0].ID)
}

func TestListReviewsByBook_Empty(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateBook(ctx, testBook("book-1", "El Hobbit")))
	reviews, err := s.ListReviewsByBook(ctx, "book-1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestDeleteReview(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateBook(ctx, testBook("book-1", "El Hobbit")))
	require.NoError(t, s.CreateReview(ctx, testReview("review-1", "book-1", "texto")))

	require.NoError(t, s.DeleteReview(ctx, "review-1"))

	_, err := s.GetReview(ctx, "review-1")
	assert.ErrorIs(t, err, ErrReviewNotFound)

	reviews, err := s.ListReviewsByBook(ctx, "book-1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestDeleteReview_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	err := s.DeleteReview(context.Background(), "review-ghost")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
