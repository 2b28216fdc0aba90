// Package recommend ranks catalog books for a reader, either by text
// similarity to a target book or by matching a stored quiz profile.
package recommend

import (
	"math"
	"sort"

	apperrors "github.com/resenia/resenia-server/internal/errors"
	"github.com/resenia/resenia-server/internal/vectorspace"
)

// Document is one catalog entry for similarity ranking. Text is the
// book's synthesized corpus: its review texts joined, or its description
// when it has no reviews.
type Document struct {
	ID   string
	Text string
}

// Scored is one ranked recommendation. Score is rounded to 3 decimals.
type Scored struct {
	ID    string
	Score float64
}

// Similarity recommends catalog documents closest to a target by cosine
// similarity in a TF-IDF space rebuilt per call.
type Similarity struct {
	tokenizer *vectorspace.Tokenizer
	limit     int
}

// NewSimilarity returns a Similarity recommender that reports at most
// limit results per call.
func NewSimilarity(tokenizer *vectorspace.Tokenizer, limit int) *Similarity {
	return &Similarity{tokenizer: tokenizer, limit: limit}
}

// Recommend ranks every catalog document other than the target by
// similarity, descending, ties kept in catalog order. Fewer than two
// catalog entries yield an empty result. A targetID absent from the
// catalog is a not found error.
func (s *Similarity) Recommend(targetID string, catalog []Document) ([]Scored, error) {
	target := -1
	for i, doc := range catalog {
		if doc.ID == targetID {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, apperrors.NotFoundf("book %s not in catalog", targetID)
	}
	if len(catalog) < 2 {
		return []Scored{}, nil
	}

	texts := make([]string, len(catalog))
	for i, doc := range catalog {
		texts[i] = doc.Text
	}
	space := vectorspace.Build(s.tokenizer, texts)

	type candidate struct {
		id    string
		score float64
	}
	candidates := make([]candidate, 0, len(catalog)-1)
	for i, doc := range catalog {
		if i == target {
			continue
		}
		candidates = append(candidates, candidate{id: doc.ID, score: space.Cosine(target, i)})
	}

	// Full precision for ordering, rounded only in the response.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	limit := s.limit
	if limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]Scored, limit)
	for i := 0; i < limit; i++ {
		out[i] = Scored{
			ID:    candidates[i].id,
			Score: math.Round(candidates[i].score*1000) / 1000,
		}
	}
	return out, nil
}
