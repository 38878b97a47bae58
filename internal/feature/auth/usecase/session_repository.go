package usecase

import (
	"context"

	"axie_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for refresh sessions.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (refresh token value).
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke marks a session as revoked by setting RevokedAt.
	Revoke(ctx context.Context, id string) error
}
