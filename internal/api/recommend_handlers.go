package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/resenia/resenia-server/internal/service"
)

func (s *Server) registerRecommendationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-similar-books",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}/recommendations",
		Summary:     "Get similar books",
		Description: "Recommends the books most similar to this one by review text, ranked by cosine similarity.",
		Tags:        []string{"Recommendations"},
	}, s.handleGetSimilarBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-quiz-recommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommend/by-quiz",
		Summary:     "Recommend by quiz",
		Description: "Scores the catalog against the authenticated user's quiz profile.",
		Tags:        []string{"Recommendations"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetQuizRecommendations)
}

// === DTOs ===

// SimilarBooksResponse contains similarity recommendations.
type SimilarBooksResponse struct {
	BookID          string                `json:"book_id" doc:"Target book ID"`
	Recommendations []service.SimilarBook `json:"recommendations" doc:"Similar books, most similar first"`
}

// SimilarBooksOutput wraps the similar books response.
type SimilarBooksOutput struct {
	Body SimilarBooksResponse
}

// QuizMatch is one scored catalog entry in a quiz recommendation.
type QuizMatch struct {
	BookID string `json:"book_id" doc:"Matched book ID"`
	Title  string `json:"title" doc:"Matched book title"`
	Score  int    `json:"score" doc:"Preference match score"`
}

// QuizRecommendationsInput has no parameters; the profile comes from the token.
type QuizRecommendationsInput struct{}

// QuizRecommendationsResponse contains quiz-based recommendations.
type QuizRecommendationsResponse struct {
	Matches []QuizMatch `json:"matches" doc:"Matching books, best first"`
}

// QuizRecommendationsOutput wraps the quiz recommendations response.
type QuizRecommendationsOutput struct {
	Body QuizRecommendationsResponse
}

// === Handlers ===

func (s *Server) handleGetSimilarBooks(ctx context.Context, input *BookIDInput) (*SimilarBooksOutput, error) {
	similar, err := s.services.Recommend.SimilarBooks(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &SimilarBooksOutput{
		Body: SimilarBooksResponse{
			BookID:          input.ID,
			Recommendations: similar,
		},
	}, nil
}

func (s *Server) handleGetQuizRecommendations(ctx context.Context, _ *QuizRecommendationsInput) (*QuizRecommendationsOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	matches, err := s.services.Recommend.ByQuiz(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := QuizRecommendationsResponse{Matches: make([]QuizMatch, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, QuizMatch{
			BookID: m.BookID,
			Title:  m.Title,
			Score:  m.Score,
		})
	}

	return &QuizRecommendationsOutput{Body: resp}, nil
}
