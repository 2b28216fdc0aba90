package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resenia/resenia-server/internal/domain"
	apperrors "github.com/resenia/resenia-server/internal/errors"
	"github.com/resenia/resenia-server/internal/store"
)

// QuizService manages each user's single quiz profile.
type QuizService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewQuizService creates a new quiz service.
func NewQuizService(store *store.Store, logger *slog.Logger) *QuizService {
	return &QuizService{store: store, logger: logger}
}

// SubmitQuizRequest contains a complete quiz profile. Submitting replaces
// any previous profile wholesale; profiles are never merged.
type SubmitQuizRequest struct {
	FavoriteGenre string   `json:"favorite_genre" validate:"required,max=100"`
	ActionLevel   string   `json:"action_level" validate:"required,oneof=low medium high"`
	Keywords      []string `json:"keywords" validate:"max=20,dive,required,max=50"`
}

// Submit stores the user's quiz profile.
func (s *QuizService) Submit(ctx context.Context, userID string, req SubmitQuizRequest) (*domain.QuizProfile, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if apperrors.Is(err, store.ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.Quiz = &domain.QuizProfile{
		FavoriteGenre: req.FavoriteGenre,
		ActionLevel:   domain.ActionLevel(req.ActionLevel),
		Keywords:      req.Keywords,
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("quiz profile saved", "user_id", userID, "genre", req.FavoriteGenre)
	}
	return user.Quiz, nil
}

// Get returns the user's quiz profile, or a precondition failure when the
// user has not completed the quiz.
func (s *QuizService) Get(ctx context.Context, userID string) (*domain.QuizProfile, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if apperrors.Is(err, store.ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !user.HasQuiz() {
		return nil, apperrors.PreconditionFailed("user has no quiz profile")
	}
	return user.Quiz, nil
}
