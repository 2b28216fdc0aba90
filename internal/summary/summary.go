// Package summary aggregates stored review sentiment into one report per
// book. Labels and scores are taken as stored at review creation, never
// reclassified.
package summary

import (
	"math"

	"github.com/resenia/resenia-server/internal/domain"
	"github.com/resenia/resenia-server/internal/vectorspace"
)

// keywordCount is how many top terms a summary reports.
const keywordCount = 5

// Summary is the aggregated sentiment of one book's reviews.
type Summary struct {
	Total       int      `json:"total"`
	PositivePct float64  `json:"positive_pct"`
	NegativePct float64  `json:"negative_pct"`
	AvgScore    float64  `json:"avg_sentiment_score"`
	Keywords    []string `json:"keywords"`
}

// Summarize computes label percentages (2 decimals), the average stored
// score (4 decimals) and the top keywords across all review texts. Zero
// reviews produce the zero Summary with an empty keyword list.
func Summarize(tokenizer *vectorspace.Tokenizer, reviews []*domain.Review) Summary {
	if len(reviews) == 0 {
		return Summary{Keywords: []string{}}
	}

	var positive, negative int
	var scoreSum float64
	texts := make([]string, len(reviews))
	for i, r := range reviews {
		switch r.SentimentLabel {
		case domain.SentimentPositive:
			positive++
		case domain.SentimentNegative:
			negative++
		}
		scoreSum += r.SentimentScore
		texts[i] = r.Text
	}

	total := len(reviews)
	keywords := vectorspace.Keywords(tokenizer, texts, keywordCount)
	if keywords == nil {
		keywords = []string{}
	}

	return Summary{
		Total:       total,
		PositivePct: round2(float64(positive) / float64(total) * 100),
		NegativePct: round2(float64(negative) / float64(total) * 100),
		AvgScore:    round4(scoreSum / float64(total)),
		Keywords:    keywords,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
