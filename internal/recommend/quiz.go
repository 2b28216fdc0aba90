package recommend

import (
	"sort"
	"strings"

	"github.com/resenia/resenia-server/internal/domain"
	apperrors "github.com/resenia/resenia-server/internal/errors"
)

// Match is one quiz-ranked book.
type Match struct {
	BookID string
	Title  string
	Score  int
}

// quizLimit caps how many quiz matches are returned.
const quizLimit = 10

// MatchProfile scores every catalog book against the quiz profile by
// case-insensitive substring matches in the description: +3 when the
// favorite genre occurs, +2 per matching keyword. Books scoring zero are
// dropped, the rest sorted descending with catalog order breaking ties,
// truncated to the top 10. A nil profile is a precondition failure.
func MatchProfile(profile *domain.QuizProfile, catalog []*domain.Book) ([]Match, error) {
	if profile == nil {
		return nil, apperrors.PreconditionFailed("user has no quiz profile")
	}

	genre := strings.ToLower(profile.FavoriteGenre)
	keywords := make([]string, 0, len(profile.Keywords))
	for _, kw := range profile.Keywords {
		keywords = append(keywords, strings.ToLower(kw))
	}

	matches := make([]Match, 0, len(catalog))
	for _, book := range catalog {
		desc := strings.ToLower(book.Description)

		score := 0
		if genre != "" && strings.Contains(desc, genre) {
			score += 3
		}
		for _, kw := range keywords {
			if kw != "" && strings.Contains(desc, kw) {
				score += 2
			}
		}
		if score == 0 {
			continue
		}
		matches = append(matches, Match{BookID: book.ID, Title: book.Title, Score: score})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	if len(matches) > quizLimit {
		matches = matches[:quizLimit]
	}
	return matches, nil
}
