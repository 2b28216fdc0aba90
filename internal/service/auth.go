package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/resenia/resenia-server/internal/auth"
	"github.com/resenia/resenia-server/internal/domain"
	apperrors "github.com/resenia/resenia-server/internal/errors"
	"github.com/resenia/resenia-server/internal/id"
	"github.com/resenia/resenia-server/internal/store"
)

// AuthService handles registration, login and token verification.
// Session lifecycle is delegated to SessionService.
type AuthService struct {
	store          *store.Store
	tokenService   *auth.TokenService
	sessionService *SessionService
	logger         *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	store *store.Store,
	tokenService *auth.TokenService,
	sessionService *SessionService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		store:          store,
		tokenService:   tokenService,
		sessionService: sessionService,
		logger:         logger,
	}
}

// RegisterRequest contains user registration data.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=1024"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
}

// LoginRequest contains user credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse contains authentication tokens and user data.
type AuthResponse struct {
	User *domain.User `json:"user"`
	SessionResponse
}

// Register creates a new user account and an initial session.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, fmt.Errorf("generate user ID: %w", err)
	}

	user := &domain.User{
		Timestamps: domain.Timestamps{
			ID: userID,
		},
		Email:        req.Email,
		PasswordHash: passwordHash,
		DisplayName:  req.DisplayName,
	}
	user.InitTimestamps()

	if err := s.store.CreateUser(ctx, user); err != nil {
		if apperrors.Is(err, store.ErrEmailTaken) {
			return nil, apperrors.AlreadyExists("email already in use")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	sessionResp, err := s.sessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user registered", "user_id", userID, "email", user.Email)
	}

	return &AuthResponse{User: user, SessionResponse: *sessionResp}, nil
}

// Login authenticates a user and creates a new session.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, store.ErrUserNotFound) {
			// Don't leak whether the email exists.
			return nil, apperrors.InvalidCredentials("invalid email or password")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	valid, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return nil, apperrors.InvalidCredentials("invalid email or password")
	}

	user.LastLoginAt = time.Now()
	if err := s.store.UpdateUser(ctx, user); err != nil {
		// Log but don't fail login.
		if s.logger != nil {
			s.logger.Warn("failed to update last login time", "user_id", user.ID, "error", err)
		}
	}

	sessionResp, err := s.sessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user logged in", "user_id", user.ID)
	}

	return &AuthResponse{User: user, SessionResponse: *sessionResp}, nil
}

// Refresh rotates a session's tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.Validation("refresh_token is required")
	}

	sessionResp, user, err := s.sessionService.RefreshSession(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, SessionResponse: *sessionResp}, nil
}

// Logout ends the session matching the refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return apperrors.Validation("refresh_token is required")
	}
	return s.sessionService.RevokeByRefreshToken(ctx, refreshToken)
}

// VerifyAccessToken validates an access token and returns its claims.
func (s *AuthService) VerifyAccessToken(tokenString string) (*auth.AccessClaims, error) {
	claims, err := s.tokenService.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired access token").WithCause(err)
	}
	return claims, nil
}

// GetUser returns the user with the given ID.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
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
	return user, nil
}
