package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/resenia/resenia-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search-books",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search books",
		Description: "Full-text search over book titles, authors and descriptions.",
		Tags:        []string{"Search"},
	}, s.handleSearchBooks)
}

// SearchInput carries the search query parameters.
type SearchInput struct {
	Query string `query:"q" doc:"Search query"`
	Limit int    `query:"limit" doc:"Maximum results (default 20, max 100)"`
}

// SearchOutput wraps the search result.
type SearchOutput struct {
	Body search.Result
}

func (s *Server) handleSearchBooks(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	result, err := s.services.Search.Search(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, err
	}

	return &SearchOutput{Body: *result}, nil
}
