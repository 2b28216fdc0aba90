package store

import "errors"

// Sentinel errors returned by store operations. Services translate these
// into caller-facing coded errors.
var (
	ErrBookNotFound    = errors.New("book not found")
	ErrBookExists      = errors.New("book already exists")
	ErrReviewNotFound  = errors.New("review not found")
	ErrReviewExists    = errors.New("review already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrEmailTaken      = errors.New("email already registered")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)
