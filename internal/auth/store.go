package auth

import (
	"context"
	"time"

	"taskboard/internal/models"
)

// SessionStore is the persistence contract the lifecycle manager depends
// on. Lookups return (nil, nil) when the record does not exist; a non-nil
// error always means the store itself failed and is surfaced verbatim.
// Single-attempt semantics: the core never retries.
type SessionStore interface {
	CreateSession(ctx context.Context, userID uint, ttl time.Duration) (*models.Session, error)
	GetSession(ctx context.Context, id uint) (*models.Session, error)
	RevokeSession(ctx context.Context, id uint) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// ResourceStore provides the single secondary lookup an ownership gate may
// need. Same (nil, nil)-for-absent convention as SessionStore.
type ResourceStore interface {
	GetBoard(ctx context.Context, id uint) (*models.Board, error)
	GetTask(ctx context.Context, id uint) (*models.Task, error)
}
