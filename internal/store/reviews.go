package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/resenia/resenia-server/internal/domain"
)

const (
	reviewPrefix       = "review:"
	reviewByBookPrefix = "idx:reviews:book:"
)

// reviewIndexKey builds the per-book review index key. The index stores
// no value; the review ID is part of the key so a prefix scan over one
// book yields its reviews in ID order.
func reviewIndexKey(bookID, reviewID string) []byte {
	return []byte(reviewByBookPrefix + bookID + ":" + reviewID)
}

// CreateReview creates a review for an existing book.
func (s *Store) CreateReview(ctx context.Context, review *domain.Review) error {
	bookExists, err := s.BookExists(ctx, review.BookID)
	if err != nil {
		return fmt.Errorf("check book exists: %w", err)
	}
	if !bookExists {
		return ErrBookNotFound
	}

	key := []byte(reviewPrefix + review.ID)
	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check review exists: %w", err)
	}
	if exists {
		return ErrReviewExists
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(review)
		if err != nil {
			return fmt.Errorf("marshal review: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(reviewIndexKey(review.BookID, review.ID), []byte{})
	})
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("review created",
			"id", review.ID,
			"book_id", review.BookID,
			"sentiment", string(review.SentimentLabel),
		)
	}
	return nil
}

// GetReview retrieves a review by ID.
func (s *Store) GetReview(_ context.Context, id string) (*domain.Review, error) {
	key := []byte(reviewPrefix + id)

	var review domain.Review
	if err := s.get(key, &review); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &review, nil
}

// ListReviewsByBook returns the reviews of one book ordered by review ID
// via a prefix scan over the per-book index.
func (s *Store) ListReviewsByBook(ctx context.Context, bookID string) ([]*domain.Review, error) {
	var ids []string
	prefix := []byte(reviewByBookPrefix + bookID + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			ids = append(ids, string(key[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	reviews := make([]*domain.Review, 0, len(ids))
	for _, id := range ids {
		review, err := s.GetReview(ctx, id)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// DeleteReview deletes a review and its book index entry.
func (s *Store) DeleteReview(ctx context.Context, id string) error {
	review, err := s.GetReview(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(reviewPrefix + id)); err != nil {
			return err
		}
		return txn.Delete(reviewIndexKey(review.BookID, id))
	})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("review deleted", "id", id, "book_id", review.BookID)
	}
	return nil
}
