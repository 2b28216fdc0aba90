package lexicon

import (
	"strings"

	"github.com/resenia/resenia-server/internal/domain"
)

// Classifier scores text against a Lexicon.
type Classifier struct {
	lex Lexicon
}

// NewClassifier returns a Classifier over the given lexicon.
func NewClassifier(lex Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Result is the outcome of classifying one text.
type Result struct {
	Label domain.Sentiment
	// Score is (positive - negative) / (positive + negative), in [-1, 1].
	// Zero when no lexicon word matched.
	Score float64
}

// Classify lowercases text and counts how many distinct lexicon words it
// contains. Each lexicon word counts at most once no matter how often it
// appears. Ties and zero matches are neutral with score 0.
func (c *Classifier) Classify(text string) Result {
	lower := strings.ToLower(text)

	var pos, neg int
	for _, w := range c.lex.Positive {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range c.lex.Negative {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return Result{Label: domain.SentimentNeutral, Score: 0}
	}

	score := float64(pos-neg) / float64(total)
	switch {
	case pos > neg:
		return Result{Label: domain.SentimentPositive, Score: score}
	case neg > pos:
		return Result{Label: domain.SentimentNegative, Score: score}
	default:
		return Result{Label: domain.SentimentNeutral, Score: 0}
	}
}
