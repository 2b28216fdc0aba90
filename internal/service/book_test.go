package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resenia/resenia-server/internal/domain"
	apperrors "github.com/resenia/resenia-server/internal/errors"
)

func TestBookService_CreateAndGet(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	book := ts.mustCreateBook(t, "El Hobbit", "Magia y aventuras")
	assert.True(t, len(book.ID) > len("book-"))

	got, err := ts.books.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "El Hobbit", got.Title)
}

func TestBookService_Create_Invalid(t *testing.T) {
	ts := setupTestServices(t)

	_, err := ts.books.CreateBook(context.Background(), CreateBookRequest{Title: ""})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
}

func TestBookService_Get_MalformedID(t *testing.T) {
	ts := setupTestServices(t)

	_, err := ts.books.GetBook(context.Background(), "libro!!!")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
}

func TestBookService_Get_NotFound(t *testing.T) {
	ts := setupTestServices(t)

	// Well-formed but absent.
	_, err := ts.books.GetBook(context.Background(), "book-aaaaaaaaaaaaaaaaaaaaa")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestBookService_Update(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	book := ts.mustCreateBook(t, "Título", "desc")
	updated, err := ts.books.UpdateBook(ctx, book.ID, UpdateBookRequest{
		Title:       "Título Nuevo",
		Author:      "Otra Autora",
		Description: "otra desc",
	})
	require.NoError(t, err)
	assert.Equal(t, "Título Nuevo", updated.Title)
	assert.Equal(t, "Otra Autora", updated.Author)
}

func TestBookService_Delete(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	book := ts.mustCreateBook(t, "Efímero", "desc")
	require.NoError(t, ts.books.DeleteBook(ctx, book.ID))

	_, err := ts.books.GetBook(ctx, book.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestBookService_Summary_NoReviews(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	book := ts.mustCreateBook(t, "Sin Reseñas", "desc")

	got, err := ts.books.Summary(ctx, book.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Total)
	assert.Zero(t, got.PositivePct)
	assert.Zero(t, got.NegativePct)
	assert.Zero(t, got.AvgScore)
	assert.Empty(t, got.Keywords)
	assert.NotNil(t, got.Keywords)
}

func TestBookService_Summary(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	book := ts.mustCreateBook(t, "El Hobbit", "desc")
	ts.mustCreateReview(t, book.ID, "Genial aventura de magia")
	ts.mustCreateReview(t, book.ID, "Aburrido y lento")

	got, err := ts.books.Summary(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)
	assert.InDelta(t, 50.0, got.PositivePct, 1e-9)
	assert.InDelta(t, 50.0, got.NegativePct, 1e-9)
	assert.NotEmpty(t, got.Keywords)
}

func TestBookService_Summary_BookMissing(t *testing.T) {
	ts := setupTestServices(t)

	_, err := ts.books.Summary(context.Background(), "book-aaaaaaaaaaaaaaaaaaaaa")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestReviewService_CreateClassifies(t *testing.T) {
	ts := setupTestServices(t)

	book := ts.mustCreateBook(t, "El Hobbit", "desc")

	positive := ts.mustCreateReview(t, book.ID, "Me encantó, genial y maravilloso")
	assert.Equal(t, domain.SentimentPositive, positive.SentimentLabel)
	assert.InDelta(t, 1.0, positive.SentimentScore, 1e-9)

	negative := ts.mustCreateReview(t, book.ID, "Fue aburrido y terrible")
	assert.Equal(t, domain.SentimentNegative, negative.SentimentLabel)
	assert.InDelta(t, -1.0, negative.SentimentScore, 1e-9)

	neutral := ts.mustCreateReview(t, book.ID, "Lo leí en vacaciones")
	assert.Equal(t, domain.SentimentNeutral, neutral.SentimentLabel)
	assert.Zero(t, neutral.SentimentScore)
}

func TestReviewService_Create_BookMissing(t *testing.T) {
	ts := setupTestServices(t)

	_, err := ts.reviews.CreateReview(context.Background(), "book-aaaaaaaaaaaaaaaaaaaaa", CreateReviewRequest{Text: "hola"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestReviewService_Create_EmptyText(t *testing.T) {
	ts := setupTestServices(t)

	book := ts.mustCreateBook(t, "El Hobbit", "desc")
	_, err := ts.reviews.CreateReview(context.Background(), book.ID, CreateReviewRequest{Text: ""})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
}

func TestReviewService_ListAndDelete(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	book := ts.mustCreateBook(t, "El Hobbit", "desc")
	review := ts.mustCreateReview(t, book.ID, "Genial")

	reviews, err := ts.reviews.ListReviews(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)

	require.NoError(t, ts.reviews.DeleteReview(ctx, review.ID))
	reviews, err = ts.reviews.ListReviews(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
