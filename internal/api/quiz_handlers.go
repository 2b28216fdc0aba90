package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/resenia/resenia-server/internal/domain"
	"github.com/resenia/resenia-server/internal/service"
)

func (s *Server) registerQuizRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "submit-quiz",
		Method:      http.MethodPost,
		Path:        "/api/v1/quiz",
		Summary:     "Submit preference quiz",
		Description: "Stores the user's reading preferences, replacing any previous answers.",
		Tags:        []string{"Quiz"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleSubmitQuiz)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-quiz",
		Method:      http.MethodGet,
		Path:        "/api/v1/quiz/me",
		Summary:     "Get quiz profile",
		Description: "Returns the authenticated user's stored quiz answers.",
		Tags:        []string{"Quiz"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetQuiz)
}

// === DTOs ===

// QuizRequest is the request body for submitting quiz answers.
type QuizRequest struct {
	FavoriteGenre string   `json:"favorite_genre" validate:"required,max=100" doc:"Preferred genre"`
	ActionLevel   string   `json:"action_level" validate:"required,oneof=low medium high" doc:"Preferred action level"`
	Keywords      []string `json:"keywords,omitempty" validate:"max=20,dive,required,max=50" doc:"Interest keywords"`
}

// SubmitQuizInput wraps the quiz request for Huma.
type SubmitQuizInput struct {
	Body QuizRequest
}

// QuizProfileResponse contains a stored quiz profile.
type QuizProfileResponse struct {
	FavoriteGenre string   `json:"favorite_genre" doc:"Preferred genre"`
	ActionLevel   string   `json:"action_level" doc:"Preferred action level"`
	Keywords      []string `json:"keywords" doc:"Interest keywords"`
}

// QuizProfileOutput wraps the quiz profile response.
type QuizProfileOutput struct {
	Body QuizProfileResponse
}

// GetQuizInput has no parameters; the profile comes from the token.
type GetQuizInput struct{}

// === Handlers ===

func (s *Server) handleSubmitQuiz(ctx context.Context, input *SubmitQuizInput) (*QuizProfileOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.services.Quiz.Submit(ctx, userID, service.SubmitQuizRequest{
		FavoriteGenre: input.Body.FavoriteGenre,
		ActionLevel:   input.Body.ActionLevel,
		Keywords:      input.Body.Keywords,
	})
	if err != nil {
		return nil, err
	}

	return &QuizProfileOutput{Body: mapQuizProfile(profile)}, nil
}

func (s *Server) handleGetQuiz(ctx context.Context, _ *GetQuizInput) (*QuizProfileOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.services.Quiz.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &QuizProfileOutput{Body: mapQuizProfile(profile)}, nil
}

// === Helpers ===

func mapQuizProfile(profile *domain.QuizProfile) QuizProfileResponse {
	keywords := profile.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return QuizProfileResponse{
		FavoriteGenre: profile.FavoriteGenre,
		ActionLevel:   string(profile.ActionLevel),
		Keywords:      keywords,
	}
}
