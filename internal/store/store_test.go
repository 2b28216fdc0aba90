package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/resenia/resenia-server/internal/domain"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "resenia-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := New(dbPath, nil)
	require.NoError(t, err)
	require.NotNil(t, s)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}
	return s, cleanup
}

func testBook(id, title string) *domain.Book {
	now := time.Now()
	return &domain.Book{
		Timestamps: domain.Timestamps{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       title,
		Author:      "Autora de Prueba",
		Description: "Magia y aventuras en un mundo misterioso",
	}
}

func testReview(id, bookID, text string) *domain.Review {
	now := time.Now()
	return &domain.Review{
		Timestamps: domain.Timestamps{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookID:         bookID,
		Username:       "lectora",
		Text:           text,
		SentimentLabel: domain.SentimentPositive,
		SentimentScore: 1.0,
	}
}

func testUser(id, email string) *domain.User {
	now := time.Now()
	return &domain.User{
		Timestamps: domain.Timestamps{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: "$argon2id$fake",
		DisplayName:  "Lectora",
	}
}
