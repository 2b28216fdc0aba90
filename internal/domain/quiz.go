package domain

// ActionLevel is the reader's appetite for action-driven plots.
type ActionLevel string

const (
	ActionLevelLow    ActionLevel = "low"
	ActionLevelMedium ActionLevel = "medium"
	ActionLevelHigh   ActionLevel = "high"
)

// Valid checks if the action level is one of the known values.
func (a ActionLevel) Valid() bool {
	switch a {
	case ActionLevelLow, ActionLevelMedium, ActionLevelHigh:
		return true
	default:
		return false
	}
}

// QuizProfile holds a user's answers to the preference quiz.
// A profile is always created or replaced wholesale, never merged field
// by field: saving a new quiz discards the previous one entirely.
type QuizProfile struct {
	FavoriteGenre string      `json:"favorite_genre"`
	ActionLevel   ActionLevel `json:"action_level"`
	Keywords      []string    `json:"keywords"` // matched case-insensitively, in answer order
}
