package search

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/resenia/resenia-server/internal/domain"
)

// mappingVersion is incremented whenever the index mapping changes, which
// forces a rebuild on startup.
const mappingVersion = "1"

// Index wraps a Bleve index with book operations.
//
// All public methods are safe for concurrent use. The mutex protects the
// index during rebuilds.
type Index struct {
	index  bleve.Index
	path   string
	logger *slog.Logger
	mu     sync.RWMutex
}

// Options configures the search index.
type Options struct {
	DataPath string
	Logger   *slog.Logger
}

// NewIndex creates or opens the search index under opts.DataPath. An
// existing index with an outdated mapping version is removed and rebuilt.
func NewIndex(opts Options) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	indexPath := filepath.Join(opts.DataPath, "search.bleve")
	versionPath := filepath.Join(opts.DataPath, "search.version")

	var index bleve.Index
	var err error
	needsRebuild := false

	indexExists := false
	if _, statErr := os.Stat(indexPath); statErr == nil {
		indexExists = true
	}

	if indexExists {
		existingVersion, readErr := os.ReadFile(versionPath)
		if readErr != nil || string(existingVersion) != mappingVersion {
			logger.Info("search index mapping outdated, will rebuild",
				"new_version", mappingVersion,
			)
			needsRebuild = true
		}
	}

	if !needsRebuild && indexExists {
		index, err = bleve.Open(indexPath)
		if err != nil {
			logger.Warn("failed to open existing index, will recreate",
				"path", indexPath,
				"error", err,
			)
			needsRebuild = true
		}
	}

	if needsRebuild {
		if removeErr := os.RemoveAll(indexPath); removeErr != nil {
			return nil, fmt.Errorf("remove old index: %w", removeErr)
		}
		index = nil
	}

	if index == nil {
		index, err = bleve.New(indexPath, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
		if writeErr := os.WriteFile(versionPath, []byte(mappingVersion), 0644); writeErr != nil {
			logger.Warn("failed to write search version file", "error", writeErr)
		}
		logger.Info("created new search index", "path", indexPath, "mapping_version", mappingVersion)
	} else {
		logger.Info("opened existing search index", "path", indexPath)
	}

	return &Index{
		index:  index,
		path:   indexPath,
		logger: logger,
	}, nil
}

// Close closes the index and releases resources.
func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.index.Close()
}

// IndexBook adds or updates a book in the index. Implements the store's
// SearchIndexer interface.
func (ix *Index) IndexBook(_ context.Context, book *domain.Book) error {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	doc := FromBook(book)
	return ix.index.Index(doc.ID, doc.ToMap())
}

// DeleteBook removes a book from the index.
func (ix *Index) DeleteBook(_ context.Context, bookID string) error {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.index.Delete(bookID)
}

// IndexBooks indexes multiple books in one batch. Used for the startup
// reindex from the store.
func (ix *Index) IndexBooks(_ context.Context, books []*domain.Book) error {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	batch := ix.index.NewBatch()
	for _, book := range books {
		doc := FromBook(book)
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			return fmt.Errorf("batch index %s: %w", doc.ID, err)
		}
	}
	return ix.index.Batch(batch)
}

// DocumentCount returns the total number of indexed books.
func (ix *Index) DocumentCount() (uint64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.index.DocCount()
}

// Hit is a single search result.
type Hit struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author,omitempty"`
	Score  float64 `json:"score"`
}

// Result holds the outcome of one search.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Search runs a match query with fuzzy fallback over title, author and
// description.
func (ix *Index) Search(_ context.Context, queryStr string, limit int) (*Result, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	queryStr = strings.TrimSpace(queryStr)
	if limit <= 0 {
		limit = 20
	}

	matchQuery := bleve.NewMatchQuery(queryStr)
	matchQuery.SetFuzziness(1)

	prefixQuery := bleve.NewPrefixQuery(strings.ToLower(queryStr))
	prefixQuery.SetField("title")

	searchQuery := bleve.NewDisjunctionQuery([]query.Query{matchQuery, prefixQuery}...)
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, limit, 0, false)
	searchRequest.Fields = []string{"title", "author"}

	res, err := ix.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, hit := range res.Hits {
		h := Hit{ID: hit.ID, Score: hit.Score}
		if title, ok := hit.Fields["title"].(string); ok {
			h.Title = title
		}
		if author, ok := hit.Fields["author"].(string); ok {
			h.Author = author
		}
		hits = append(hits, h)
	}

	return &Result{
		Query:  queryStr,
		Total:  res.Total,
		TookMs: res.Took.Milliseconds(),
		Hits:   hits,
	}, nil
}
