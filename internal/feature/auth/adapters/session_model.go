package adapters

import (
	"time"

	"axie_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the GORM representation of a refresh session.
type SessionModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    uint   `gorm:"index;not null"`
	UserAgent string `gorm:"size:512"`
	IPAddress string `gorm:"size:64"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index;not null"`
	RevokedAt *time.Time
}

// TableName sets the table name for SessionModel.
func (SessionModel) TableName() string {
	return "sessions"
}

func toSessionModel(s *entity.Session) SessionModel {
	return SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		UserAgent: s.UserAgent,
		IPAddress: s.IPAddress,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		RevokedAt: s.RevokedAt,
	}
}

func toSessionEntity(m SessionModel) *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		UserAgent: m.UserAgent,
		IPAddress: m.IPAddress,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
	}
}
