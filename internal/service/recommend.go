package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resenia/resenia-server/internal/domain"
	apperrors "github.com/resenia/resenia-server/internal/errors"
	"github.com/resenia/resenia-server/internal/id"
	"github.com/resenia/resenia-server/internal/recommend"
	"github.com/resenia/resenia-server/internal/store"
)

// RecommendationService ranks catalog books for readers. The similarity
// corpus is rebuilt from the store on every call rather than cached;
// results always reflect current reviews.
type RecommendationService struct {
	store      *store.Store
	similarity *recommend.Similarity
	logger     *slog.Logger
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(store *store.Store, similarity *recommend.Similarity, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{
		store:      store,
		similarity: similarity,
		logger:     logger,
	}
}

// SimilarBook is one similarity recommendation with display fields.
type SimilarBook struct {
	BookID string  `json:"book_id"`
	Title  string  `json:"title"`
	Author string  `json:"author,omitempty"`
	Score  float64 `json:"score"`
}

// SimilarBooks recommends the books closest to the target by review text.
// Each catalog entry's text is its joined review texts, falling back to
// the description for unreviewed books.
func (s *RecommendationService) SimilarBooks(ctx context.Context, bookID string) ([]SimilarBook, error) {
	if !id.Valid("book", bookID) {
		return nil, apperrors.Validation("malformed book id")
	}

	exists, err := s.store.BookExists(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("check book exists: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound("book not found")
	}

	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	byID := make(map[string]*domain.Book, len(books))
	catalog := make([]recommend.Document, len(books))
	for i, book := range books {
		reviews, err := s.store.ListReviewsByBook(ctx, book.ID)
		if err != nil {
			return nil, fmt.Errorf("list reviews for %s: %w", book.ID, err)
		}
		byID[book.ID] = book
		catalog[i] = recommend.Document{
			ID:   book.ID,
			Text: book.SimilarityText(reviews),
		}
	}

	scored, err := s.similarity.Recommend(bookID, catalog)
	if err != nil {
		return nil, err
	}

	out := make([]SimilarBook, len(scored))
	for i, sc := range scored {
		book := byID[sc.ID]
		out[i] = SimilarBook{
			BookID: sc.ID,
			Title:  book.Title,
			Author: book.Author,
			Score:  sc.Score,
		}
	}
	return out, nil
}

// ByQuiz recommends books matching the user's stored quiz profile. Users
// without a profile get a precondition failure, not an empty list.
func (s *RecommendationService) ByQuiz(ctx context.Context, userID string) ([]recommend.Match, error) {
	if !id.Valid("user", userID) {
		return nil, apperrors.Validation("malformed user id")
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if apperrors.Is(err, store.ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	matches, err := recommend.MatchProfile(user.Quiz, books)
	if err != nil {
		return nil, err
	}
	return matches, nil
}
