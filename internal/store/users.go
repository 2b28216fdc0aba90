package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/resenia/resenia-server/internal/domain"
)

const (
	userPrefix        = "user:"
	userByEmailPrefix = "idx:users:email:"
)

// normalizeEmail lowercases and trims an email for case-insensitive
// index lookups.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser creates a new user and its email index entry.
func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	key := []byte(userPrefix + user.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	emailKey := []byte(userByEmailPrefix + normalizeEmail(user.Email))
	emailTaken, err := s.exists(emailKey)
	if err != nil {
		return fmt.Errorf("check email taken: %w", err)
	}
	if emailTaken {
		return ErrEmailTaken
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(user.ID))
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user created", "id", user.ID, "email", normalizeEmail(user.Email))
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	key := []byte(userPrefix + id)

	var user domain.User
	if err := s.get(key, &user); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user through the email index.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	emailKey := []byte(userByEmailPrefix + normalizeEmail(email))

	var userID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID = string(val)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	return s.GetUser(ctx, userID)
}

// UpdateUser updates an existing user, moving the email index entry when
// the address changed.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	oldUser, err := s.GetUser(ctx, user.ID)
	if err != nil {
		return err
	}

	oldEmail := normalizeEmail(oldUser.Email)
	newEmail := normalizeEmail(user.Email)
	if oldEmail != newEmail {
		taken, err := s.exists([]byte(userByEmailPrefix + newEmail))
		if err != nil {
			return fmt.Errorf("check email taken: %w", err)
		}
		if taken {
			return ErrEmailTaken
		}
	}

	user.Touch()
	err = s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		if err := txn.Set([]byte(userPrefix+user.ID), data); err != nil {
			return err
		}

		if oldEmail != newEmail {
			if err := txn.Delete([]byte(userByEmailPrefix + oldEmail)); err != nil {
				return err
			}
			if err := txn.Set([]byte(userByEmailPrefix+newEmail), []byte(user.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user updated", "id", user.ID)
	}
	return nil
}
