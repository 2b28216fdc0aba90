// Package search provides full-text book search using Bleve. The index
// is kept in sync with the store through the store's SearchIndexer hook.
package search

import "github.com/resenia/resenia-server/internal/domain"

// BookDocument is the Bleve document for one book.
type BookDocument struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// FromBook builds the index document for a book.
func FromBook(book *domain.Book) *BookDocument {
	return &BookDocument{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		CreatedAt:   book.CreatedAt.UnixMilli(),
		UpdatedAt:   book.UpdatedAt.UnixMilli(),
	}
}

// ToMap converts the document to a map with lowercase field names so they
// match the index mapping. Bleve would otherwise use the capitalized Go
// field names.
func (d *BookDocument) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":          d.ID,
		"title":       d.Title,
		"author":      d.Author,
		"description": d.Description,
		"created_at":  d.CreatedAt,
		"updated_at":  d.UpdatedAt,
	}
}
