package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resenia/resenia-server/internal/domain"
	apperrors "github.com/resenia/resenia-server/internal/errors"
	"github.com/resenia/resenia-server/internal/id"
	"github.com/resenia/resenia-server/internal/store"
	"github.com/resenia/resenia-server/internal/summary"
	"github.com/resenia/resenia-server/internal/vectorspace"
)

// BookService manages the book catalog and its review summaries.
type BookService struct {
	store     *store.Store
	tokenizer *vectorspace.Tokenizer
	logger    *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *store.Store, tokenizer *vectorspace.Tokenizer, logger *slog.Logger) *BookService {
	return &BookService{
		store:     store,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// CreateBookRequest contains the data for a new book.
type CreateBookRequest struct {
	Title       string `json:"title" validate:"required,max=300"`
	Author      string `json:"author" validate:"max=200"`
	Description string `json:"description" validate:"max=5000"`
}

// UpdateBookRequest contains replacement data for an existing book.
type UpdateBookRequest struct {
	Title       string `json:"title" validate:"required,max=300"`
	Author      string `json:"author" validate:"max=200"`
	Description string `json:"description" validate:"max=5000"`
}

// CreateBook validates and stores a new book.
func (s *BookService) CreateBook(ctx context.Context, req CreateBookRequest) (*domain.Book, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	bookID, err := id.Generate("book")
	if err != nil {
		return nil, fmt.Errorf("generate book ID: %w", err)
	}

	book := &domain.Book{
		Timestamps: domain.Timestamps{
			ID: bookID,
		},
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	}
	book.InitTimestamps()

	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// GetBook returns one book by ID.
func (s *BookService) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	if !id.Valid("book", bookID) {
		return nil, apperrors.Validation("malformed book id")
	}

	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		if apperrors.Is(err, store.ErrBookNotFound) {
			return nil, apperrors.NotFound("book not found")
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// ListBooks returns the whole catalog.
func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// UpdateBook replaces a book's fields.
func (s *BookService) UpdateBook(ctx context.Context, bookID string, req UpdateBookRequest) (*domain.Book, error) {
	if !id.Valid("book", bookID) {
		return nil, apperrors.Validation("malformed book id")
	}
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		if apperrors.Is(err, store.ErrBookNotFound) {
			return nil, apperrors.NotFound("book not found")
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	book.Title = req.Title
	book.Author = req.Author
	book.Description = req.Description

	if err := s.store.UpdateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return book, nil
}

// DeleteBook removes a book and its reviews.
func (s *BookService) DeleteBook(ctx context.Context, bookID string) error {
	if !id.Valid("book", bookID) {
		return apperrors.Validation("malformed book id")
	}

	if err := s.store.DeleteBook(ctx, bookID); err != nil {
		if apperrors.Is(err, store.ErrBookNotFound) {
			return apperrors.NotFound("book not found")
		}
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// Summary aggregates the stored sentiment of one book's reviews.
func (s *BookService) Summary(ctx context.Context, bookID string) (*summary.Summary, error) {
	if !id.Valid("book", bookID) {
		return nil, apperrors.Validation("malformed book id")
	}

	exists, err := s.store.BookExists(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("check book exists: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound("book not found")
	}

	reviews, err := s.store.ListReviewsByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	result := summary.Summarize(s.tokenizer, reviews)
	return &result, nil
}
