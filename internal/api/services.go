package api

import (
	"github.com/resenia/resenia-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Auth      *service.AuthService
	Book      *service.BookService
	Review    *service.ReviewService
	Quiz      *service.QuizService
	Recommend *service.RecommendationService
	Search    *service.SearchService
}
