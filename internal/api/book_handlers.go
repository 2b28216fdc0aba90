package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/resenia/resenia-server/internal/domain"
	"github.com/resenia/resenia-server/internal/service"
	"github.com/resenia/resenia-server/internal/summary"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "create-book",
		Method:      http.MethodPost,
		Path:        "/api/v1/books",
		Summary:     "Create book",
		Description: "Adds a book to the catalog and indexes it for search.",
		Tags:        []string{"Books"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "list-books",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-book",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "update-book",
		Method:      http.MethodPut,
		Path:        "/api/v1/books/{id}",
		Summary:     "Update book",
		Description: "Replaces the book's title, author and description.",
		Tags:        []string{"Books"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "delete-book",
		Method:      http.MethodDelete,
		Path:        "/api/v1/books/{id}",
		Summary:     "Delete book",
		Description: "Deletes the book and all of its reviews.",
		Tags:        []string{"Books"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-book-summary",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}/summary",
		Summary:     "Get review summary",
		Description: "Aggregates sentiment percentages, average score and top keywords over the book's reviews.",
		Tags:        []string{"Books"},
	}, s.handleGetBookSummary)
}

// === DTOs ===

// BookResponse contains book information in API responses.
type BookResponse struct {
	ID          string    `json:"id" doc:"Book ID"`
	Title       string    `json:"title" doc:"Book title"`
	Author      string    `json:"author,omitempty" doc:"Book author"`
	Description string    `json:"description,omitempty" doc:"Book description"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt   time.Time `json:"updated_at" doc:"Last update timestamp"`
}

// BookRequest is the request body for creating or updating a book.
type BookRequest struct {
	Title       string `json:"title" validate:"required,max=300" doc:"Book title"`
	Author      string `json:"author,omitempty" validate:"max=200" doc:"Book author"`
	Description string `json:"description,omitempty" validate:"max=5000" doc:"Book description"`
}

// CreateBookInput wraps the create request for Huma.
type CreateBookInput struct {
	Body BookRequest
}

// BookOutput wraps a single book response.
type BookOutput struct {
	Body BookResponse
}

// ListBooksInput has no parameters.
type ListBooksInput struct{}

// BookListResponse contains the full catalog.
type BookListResponse struct {
	Books []BookResponse `json:"books" doc:"Books in catalog order"`
	Total int            `json:"total" doc:"Number of books"`
}

// BookListOutput wraps the book list response.
type BookListOutput struct {
	Body BookListResponse
}

// BookIDInput identifies a book by path parameter.
type BookIDInput struct {
	ID string `path:"id" doc:"Book ID"`
}

// UpdateBookInput wraps the update request for Huma.
type UpdateBookInput struct {
	ID   string `path:"id" doc:"Book ID"`
	Body BookRequest
}

// SummaryOutput wraps the review summary response.
type SummaryOutput struct {
	Body summary.Summary
}

// === Handlers ===

func (s *Server) handleCreateBook(ctx context.Context, input *CreateBookInput) (*BookOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	book, err := s.services.Book.CreateBook(ctx, service.CreateBookRequest{
		Title:       input.Body.Title,
		Author:      input.Body.Author,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, err
	}

	return &BookOutput{Body: mapBookResponse(book)}, nil
}

func (s *Server) handleListBooks(ctx context.Context, _ *ListBooksInput) (*BookListOutput, error) {
	books, err := s.services.Book.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	resp := BookListResponse{
		Books: make([]BookResponse, 0, len(books)),
		Total: len(books),
	}
	for _, book := range books {
		resp.Books = append(resp.Books, mapBookResponse(book))
	}

	return &BookListOutput{Body: resp}, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *BookIDInput) (*BookOutput, error) {
	book, err := s.services.Book.GetBook(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &BookOutput{Body: mapBookResponse(book)}, nil
}

func (s *Server) handleUpdateBook(ctx context.Context, input *UpdateBookInput) (*BookOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	book, err := s.services.Book.UpdateBook(ctx, input.ID, service.UpdateBookRequest{
		Title:       input.Body.Title,
		Author:      input.Body.Author,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, err
	}

	return &BookOutput{Body: mapBookResponse(book)}, nil
}

func (s *Server) handleDeleteBook(ctx context.Context, input *BookIDInput) (*MessageOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	if err := s.services.Book.DeleteBook(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Book deleted"}}, nil
}

func (s *Server) handleGetBookSummary(ctx context.Context, input *BookIDInput) (*SummaryOutput, error) {
	sum, err := s.services.Book.Summary(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &SummaryOutput{Body: *sum}, nil
}

// === Helpers ===

func mapBookResponse(book *domain.Book) BookResponse {
	return BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}
}
