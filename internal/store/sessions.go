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
	sessionPrefix        = "session:"
	sessionByTokenPrefix = "idx:sessions:token:"
	sessionByUserPrefix  = "idx:sessions:user:"
)

// CreateSession creates a new user session with its token and user index
// entries.
func (s *Store) CreateSession(_ context.Context, session *domain.Session) error {
	key := []byte(sessionPrefix + session.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check session exists: %w", err)
	}
	if exists {
		return ErrSessionExists
	}

	tokenKey := []byte(sessionByTokenPrefix + session.RefreshTokenHash)
	userIndexKey := []byte(sessionByUserPrefix + session.UserID + ":" + session.ID)

	return s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		if err := txn.Set(tokenKey, []byte(session.ID)); err != nil {
			return err
		}
		return txn.Set(userIndexKey, []byte{})
	})
}

// GetSession retrieves a session by ID.
func (s *Store) GetSession(_ context.Context, id string) (*domain.Session, error) {
	key := []byte(sessionPrefix + id)

	var session domain.Session
	if err := s.get(key, &session); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// GetSessionByRefreshToken retrieves a session by refresh token hash.
// Used during the token refresh flow.
func (s *Store) GetSessionByRefreshToken(ctx context.Context, tokenHash string) (*domain.Session, error) {
	tokenKey := []byte(sessionByTokenPrefix + tokenHash)

	var sessionID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tokenKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			sessionID = string(val)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("lookup session by token: %w", err)
	}

	return s.GetSession(ctx, sessionID)
}

// UpdateSession updates an existing session, moving the token index entry
// on rotation.
func (s *Store) UpdateSession(ctx context.Context, session *domain.Session) error {
	oldSession, err := s.GetSession(ctx, session.ID)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}
		if err := txn.Set([]byte(sessionPrefix+session.ID), data); err != nil {
			return err
		}

		if oldSession.RefreshTokenHash != session.RefreshTokenHash {
			oldTokenKey := []byte(sessionByTokenPrefix + oldSession.RefreshTokenHash)
			if err := txn.Delete(oldTokenKey); err != nil {
				return err
			}
			newTokenKey := []byte(sessionByTokenPrefix + session.RefreshTokenHash)
			if err := txn.Set(newTokenKey, []byte(session.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteSession removes a session and its index entries.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(sessionPrefix + id)); err != nil {
			return err
		}
		if err := txn.Delete([]byte(sessionByTokenPrefix + session.RefreshTokenHash)); err != nil {
			return err
		}
		return txn.Delete([]byte(sessionByUserPrefix + session.UserID + ":" + id))
	})
}

// DeleteUserSessions removes every session belonging to a user. Used on
// logout-everywhere and account changes.
func (s *Store) DeleteUserSessions(ctx context.Context, userID string) error {
	var ids []string
	prefix := []byte(sessionByUserPrefix + userID + ":")

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
		return fmt.Errorf("list user sessions: %w", err)
	}

	for _, id := range ids {
		if err := s.DeleteSession(ctx, id); err != nil && !errors.Is(err, ErrSessionNotFound) {
			return err
		}
	}
	return nil
}
