package domain

import "time"

// Session represents a login session backed by an opaque refresh token.
// Only a SHA-256 hash of the refresh token is stored; the token itself is
// returned to the client once and never persisted.
type Session struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	RefreshTokenHash string    `json:"refresh_token_hash"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	RevokedAt        *time.Time `json:"revoked_at,omitempty"`
}

// IsValid returns true if the session can still be used to refresh tokens.
func (s *Session) IsValid(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Revoke marks the session as revoked.
func (s *Session) Revoke() {
	now := time.Now()
	s.RevokedAt = &now
}
