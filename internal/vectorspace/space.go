// Package vectorspace builds TF-IDF document vectors and compares them by
// cosine similarity. The vocabulary is ordered by first appearance across
// the corpus, so identical input always produces identical vectors.
package vectorspace

import "math"

// Space is an immutable TF-IDF vector space over one corpus. Rows are
// L2-normalized, so the cosine of two documents is their dot product.
type Space struct {
	vocab   []string
	indexOf map[string]int
	rows    [][]float64
}

// Build tokenizes every document and constructs the space. Documents that
// produce no tokens get a zero vector. An empty corpus yields an empty
// space.
func Build(tokenizer *Tokenizer, docs []string) *Space {
	s := &Space{indexOf: make(map[string]int)}

	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokens := tokenizer.Tokenize(doc)
		tokenized[i] = tokens
		for _, tok := range tokens {
			if _, ok := s.indexOf[tok]; !ok {
				s.indexOf[tok] = len(s.vocab)
				s.vocab = append(s.vocab, tok)
			}
		}
	}

	n := len(docs)
	df := make([]int, len(s.vocab))
	counts := make([][]float64, n)
	for i, tokens := range tokenized {
		row := make([]float64, len(s.vocab))
		for _, tok := range tokens {
			row[s.indexOf[tok]]++
		}
		for j, c := range row {
			if c > 0 {
				df[j]++
			}
		}
		counts[i] = row
	}

	// Smooth IDF: ln((1+N)/(1+df)) + 1. Stays positive even for a term
	// present in every document.
	idf := make([]float64, len(s.vocab))
	for j, d := range df {
		idf[j] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	s.rows = make([][]float64, n)
	for i, row := range counts {
		var sumSq float64
		for j := range row {
			row[j] *= idf[j]
			sumSq += row[j] * row[j]
		}
		if sumSq > 0 {
			inv := 1 / math.Sqrt(sumSq)
			for j := range row {
				row[j] *= inv
			}
		}
		s.rows[i] = row
	}
	return s
}

// Len returns the number of documents in the space.
func (s *Space) Len() int { return len(s.rows) }

// Vocab returns the corpus vocabulary in first-appearance order. The
// returned slice must not be modified.
func (s *Space) Vocab() []string { return s.vocab }

// Vector returns the normalized TF-IDF row for document i. The returned
// slice must not be modified.
func (s *Space) Vector(i int) []float64 { return s.rows[i] }

// Cosine returns the cosine similarity of documents i and j. A zero
// vector on either side yields 0, never NaN.
func (s *Space) Cosine(i, j int) float64 {
	a, b := s.rows[i], s.rows[j]
	var dot float64
	for k := range a {
		dot += a[k] * b[k]
	}
	return dot
}
