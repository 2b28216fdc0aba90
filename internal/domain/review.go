package domain

// Sentiment is the polarity label assigned to a review at creation time.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Valid checks if the sentiment label is one of the known values.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	default:
		return false
	}
}

// Review represents a single reader review of a book.
//
// SentimentLabel and SentimentScore are derived by the lexicon classifier
// when the review is created and stored verbatim; they are never recomputed,
// so later lexicon changes do not rewrite history.
type Review struct {
	Timestamps
	BookID         string    `json:"book_id"`
	Username       string    `json:"username,omitempty"`
	Text           string    `json:"text"`
	SentimentLabel Sentiment `json:"sentiment_label"`
	SentimentScore float64   `json:"sentiment_score"` // in [-1.0, 1.0]
}
