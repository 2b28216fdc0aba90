package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/resenia/resenia-server/internal/domain"
	"github.com/resenia/resenia-server/internal/service"
)

func (s *Server) registerReviewRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "create-review",
		Method:      http.MethodPost,
		Path:        "/api/v1/books/{id}/reviews",
		Summary:     "Create review",
		Description: "Stores a review for the book. The sentiment label and score are computed at creation time.",
		Tags:        []string{"Reviews"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateReview)

	huma.Register(s.api, huma.Operation{
		OperationID: "list-reviews",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}/reviews",
		Summary:     "List reviews",
		Description: "Returns all reviews for the book.",
		Tags:        []string{"Reviews"},
	}, s.handleListReviews)

	huma.Register(s.api, huma.Operation{
		OperationID: "delete-review",
		Method:      http.MethodDelete,
		Path:        "/api/v1/reviews/{id}",
		Summary:     "Delete review",
		Tags:        []string{"Reviews"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteReview)
}

// === DTOs ===

// ReviewResponse contains review information in API responses.
type ReviewResponse struct {
	ID             string    `json:"id" doc:"Review ID"`
	BookID         string    `json:"book_id" doc:"Reviewed book ID"`
	Username       string    `json:"username,omitempty" doc:"Reviewer name"`
	Text           string    `json:"text" doc:"Review text"`
	SentimentLabel string    `json:"sentiment_label" doc:"Classified sentiment (positive, negative, neutral)"`
	SentimentScore float64   `json:"sentiment_score" doc:"Sentiment score in [-1, 1]"`
	CreatedAt      time.Time `json:"created_at" doc:"Creation timestamp"`
}

// ReviewRequest is the request body for creating a review.
type ReviewRequest struct {
	Username string `json:"username,omitempty" validate:"max=100" doc:"Reviewer name"`
	Text     string `json:"text" validate:"required,max=10000" doc:"Review text"`
}

// CreateReviewInput wraps the review request for Huma.
type CreateReviewInput struct {
	ID   string `path:"id" doc:"Book ID"`
	Body ReviewRequest
}

// ReviewOutput wraps a single review response.
type ReviewOutput struct {
	Body ReviewResponse
}

// ReviewListResponse contains a book's reviews.
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews" doc:"Reviews for the book"`
	Total   int              `json:"total" doc:"Number of reviews"`
}

// ReviewListOutput wraps the review list response.
type ReviewListOutput struct {
	Body ReviewListResponse
}

// ReviewIDInput identifies a review by path parameter.
type ReviewIDInput struct {
	ID string `path:"id" doc:"Review ID"`
}

// === Handlers ===

func (s *Server) handleCreateReview(ctx context.Context, input *CreateReviewInput) (*ReviewOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	review, err := s.services.Review.CreateReview(ctx, input.ID, service.CreateReviewRequest{
		Username: input.Body.Username,
		Text:     input.Body.Text,
	})
	if err != nil {
		return nil, err
	}

	return &ReviewOutput{Body: mapReviewResponse(review)}, nil
}

func (s *Server) handleListReviews(ctx context.Context, input *BookIDInput) (*ReviewListOutput, error) {
	reviews, err := s.services.Review.ListReviews(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	resp := ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
		Total:   len(reviews),
	}
	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, mapReviewResponse(review))
	}

	return &ReviewListOutput{Body: resp}, nil
}

func (s *Server) handleDeleteReview(ctx context.Context, input *ReviewIDInput) (*MessageOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	if err := s.services.Review.DeleteReview(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Review deleted"}}, nil
}

// === Helpers ===

func mapReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID,
		BookID:         review.BookID,
		Username:       review.Username,
		Text:           review.Text,
		SentimentLabel: string(review.SentimentLabel),
		SentimentScore: review.SentimentScore,
		CreatedAt:      review.CreatedAt,
	}
}
