package domain

import "time"

// User represents an authenticated reader account.
type User struct {
	Timestamps
	Email        string       `json:"email"`
	PasswordHash string       `json:"password_hash,omitempty"` // Stored hashed, filter from API responses
	DisplayName  string       `json:"display_name"`
	LastLoginAt  time.Time    `json:"last_login_at,omitzero"`
	Quiz         *QuizProfile `json:"quiz,omitempty"` // nil until the user completes the quiz
}

// HasQuiz returns true if the user has completed the preference quiz.
func (u *User) HasQuiz() bool {
	return u.Quiz != nil
}
