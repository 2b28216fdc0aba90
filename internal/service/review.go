package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resenia/resenia-server/internal/domain"
	apperrors "github.com/resenia/resenia-server/internal/errors"
	"github.com/resenia/resenia-server/internal/id"
	"github.com/resenia/resenia-server/internal/lexicon"
	"github.com/resenia/resenia-server/internal/store"
)

// ReviewService manages reviews. Sentiment is classified once at creation
// and stored verbatim; it is never recomputed.
type ReviewService struct {
	store      *store.Store
	classifier *lexicon.Classifier
	logger     *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(store *store.Store, classifier *lexicon.Classifier, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:      store,
		classifier: classifier,
		logger:     logger,
	}
}

// CreateReviewRequest contains the data for a new review.
type CreateReviewRequest struct {
	Username string `json:"username" validate:"max=100"`
	Text     string `json:"text" validate:"required,max=10000"`
}

// CreateReview classifies the review text and stores the review for an
// existing book.
func (s *ReviewService) CreateReview(ctx context.Context, bookID string, req CreateReviewRequest) (*domain.Review, error) {
	if !id.Valid("book", bookID) {
		return nil, apperrors.Validation("malformed book id")
	}
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	reviewID, err := id.Generate("review")
	if err != nil {
		return nil, fmt.Errorf("generate review ID: %w", err)
	}

	sentiment := s.classifier.Classify(req.Text)

	review := &domain.Review{
		Timestamps: domain.Timestamps{
			ID: reviewID,
		},
		BookID:         bookID,
		Username:       req.Username,
		Text:           req.Text,
		SentimentLabel: sentiment.Label,
		SentimentScore: sentiment.Score,
	}
	review.InitTimestamps()

	if err := s.store.CreateReview(ctx, review); err != nil {
		if apperrors.Is(err, store.ErrBookNotFound) {
			return nil, apperrors.NotFound("book not found")
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// ListReviews returns the reviews of one book.
func (s *ReviewService) ListReviews(ctx context.Context, bookID string) ([]*domain.Review, error) {
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

	reviews, err := s.store.ListReviewsByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// DeleteReview removes one review.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID string) error {
	if !id.Valid("review", reviewID) {
		return apperrors.Validation("malformed review id")
	}

	if err := s.store.DeleteReview(ctx, reviewID); err != nil {
		if apperrors.Is(err, store.ErrReviewNotFound) {
			return apperrors.NotFound("review not found")
		}
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// ClassifySentiment exposes the lexicon classifier for ad hoc text.
func (s *ReviewService) ClassifySentiment(text string) lexicon.Result {
	return s.classifier.Classify(text)
}
