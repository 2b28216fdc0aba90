package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/resenia/resenia-server/internal/errors"
	"github.com/resenia/resenia-server/internal/search"
	"github.com/resenia/resenia-server/internal/store"
)

// SearchService exposes full-text book search over the Bleve index.
type SearchService struct {
	store  *store.Store
	index  *search.Index
	logger *slog.Logger
}

// NewSearchService creates a search service and registers the index as
// the store's search indexer so writes stay in sync.
func NewSearchService(store *store.Store, index *search.Index, logger *slog.Logger) *SearchService {
	store.SetSearchIndexer(index)
	return &SearchService{
		store:  store,
		index:  index,
		logger: logger,
	}
}

// Search runs a query against the index.
func (s *SearchService) Search(ctx context.Context, query string, limit int) (*search.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.Validation("query is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.index.Search(ctx, query, limit)
}

// Reindex rebuilds the index from the store. Called at startup so the
// index catches up with writes it may have missed.
func (s *SearchService) Reindex(ctx context.Context) error {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return fmt.Errorf("list books: %w", err)
	}

	if err := s.index.IndexBooks(ctx, books); err != nil {
		return fmt.Errorf("index books: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("search reindex complete", "books", len(books))
	}
	return nil
}
