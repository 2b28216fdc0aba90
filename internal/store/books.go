package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/resenia/resenia-server/internal/domain"
)

const bookPrefix = "book:"

// CreateBook creates a new book.
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	key := []byte(bookPrefix + book.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check book exists: %w", err)
	}
	if exists {
		return ErrBookExists
	}

	if err := s.set(key, book); err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	if s.searchIndexer != nil {
		if err := s.searchIndexer.IndexBook(ctx, book); err != nil && s.logger != nil {
			s.logger.Warn("failed to index book", "id", book.ID, "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("book created", "id", book.ID, "title", book.Title)
	}
	return nil
}

// GetBook retrieves a book by ID.
func (s *Store) GetBook(_ context.Context, id string) (*domain.Book, error) {
	key := []byte(bookPrefix + id)

	var book domain.Book
	if err := s.get(key, &book); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &book, nil
}

// UpdateBook updates an existing book.
func (s *Store) UpdateBook(ctx context.Context, book *domain.Book) error {
	key := []byte(bookPrefix + book.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check book exists: %w", err)
	}
	if !exists {
		return ErrBookNotFound
	}

	book.Touch()
	if err := s.set(key, book); err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	if s.searchIndexer != nil {
		if err := s.searchIndexer.IndexBook(ctx, book); err != nil && s.logger != nil {
			s.logger.Warn("failed to index book", "id", book.ID, "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("book updated", "id", book.ID, "title", book.Title)
	}
	return nil
}

// DeleteBook deletes a book together with its reviews and index entries.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return err
	}

	reviews, err := s.ListReviewsByBook(ctx, id)
	if err != nil {
		return fmt.Errorf("list reviews for book: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(bookPrefix + id)); err != nil {
			return err
		}
		for _, review := range reviews {
			if err := txn.Delete([]byte(reviewPrefix + review.ID)); err != nil {
				return err
			}
			if err := txn.Delete(reviewIndexKey(id, review.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if s.searchIndexer != nil {
		if err := s.searchIndexer.DeleteBook(ctx, id); err != nil && s.logger != nil {
			s.logger.Warn("failed to remove book from index", "id", id, "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("book deleted", "id", id, "title", book.Title, "reviews", len(reviews))
	}
	return nil
}

// BookExists checks if a book exists by ID.
func (s *Store) BookExists(_ context.Context, id string) (bool, error) {
	return s.exists([]byte(bookPrefix + id))
}

// ListBooks returns every book ordered by ID. Badger iterates keys in
// byte order, so the listing is stable across calls.
func (s *Store) ListBooks(_ context.Context) ([]*domain.Book, error) {
	var books []*domain.Book
	prefix := []byte(bookPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var book domain.Book
				if err := json.Unmarshal(val, &book); err != nil {
					return err
				}
				books = append(books, &book)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}
