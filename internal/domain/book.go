// Package domain contains the core business entities for the Reseña book review service.
package domain

import "strings"

// Book represents a book in the catalog.
// Books are created through the API and never mutated by the analytics
// components; identifiers are opaque prefixed NanoIDs assigned at creation.
type Book struct {
	Timestamps
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
}

// SimilarityText returns the text that represents this book in the
// cross-catalog similarity corpus: the concatenation of its review texts,
// or the description when the book has no reviews yet.
//
// The result is empty only when the book has neither reviews nor a
// description, which downstream consumers treat as "no signal".
func (b *Book) SimilarityText(reviews []*Review) string {
	if len(reviews) == 0 {
		return b.Description
	}
	texts := make([]string, len(reviews))
	for i, r := range reviews {
		texts[i] = r.Text
	}
	return strings.Join(texts, " ")
}
