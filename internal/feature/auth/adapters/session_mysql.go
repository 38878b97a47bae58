package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"axie_backend/internal/feature/auth/domain/entity"
	"axie_backend/internal/feature/auth/usecase"
)

// sessionMySQL is the MySQL implementation of the SessionRepository
// interface, used when Redis is unavailable.
type sessionMySQL struct {
	db *gorm.DB
}

// Compile-time check that sessionMySQL implements SessionRepository.
var _ usecase.SessionRepository = (*sessionMySQL)(nil)

// NewSessionMySQL creates a new sessionMySQL instance backed by the given gorm.DB.
func NewSessionMySQL(db *gorm.DB) *sessionMySQL {
	return &sessionMySQL{db: db}
}

// Create inserts the session.
func (r *sessionMySQL) Create(ctx context.Context, s *entity.Session) error {
	m := toSessionModel(s)
	return r.db.WithContext(ctx).Create(&m).Error
}

// FindByID retrieves a session by its refresh token value.
// It returns usecase.ErrSessionNotFound when no session matches.
func (r *sessionMySQL) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var m SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return toSessionEntity(m), nil
}

// Revoke marks a session as revoked.
func (r *sessionMySQL) Revoke(ctx context.Context, id string) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ?", id).
		Update("revoked_at", &now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}
