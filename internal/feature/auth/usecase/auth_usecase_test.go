package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"axie_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// mockSessionRepository is an in-memory SessionRepository.
type mockSessionRepository struct {
	sessions map[string]*entity.Session
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: map[string]*entity.Session{}}
}

func (m *mockSessionRepository) Create(ctx context.Context, s *entity.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *mockSessionRepository) Revoke(ctx context.Context, id string) error {
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

// mockJWTGenerator is a mock implementation of the JWTGenerator interface.
type mockJWTGenerator struct {
	GenerateTokenFunc func(userID uint, username string) (string, error)
}

func (m *mockJWTGenerator) GenerateToken(userID uint, username string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, username)
	}
	return "test-token", nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success: password is hashed and a token pair is issued", func(t *testing.T) {
		var created *entity.User
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = 7
				created = user
				return nil
			},
		}
		sessions := newMockSessionRepository()
		uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{}, time.Hour)

		pair, err := uc.Register(ctx, "alice", "pw1", ClientInfo{UserAgent: "test", IPAddress: "127.0.0.1"})
		require.NoError(t, err)

		assert.Equal(t, "test-token", pair.AccessToken)
		assert.Len(t, pair.RefreshToken, 64)
		require.NotNil(t, created)
		assert.NotEqual(t, "pw1", created.Password, "plaintext password must not be stored")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("pw1")))
		assert.Len(t, sessions.sessions, 1)
	})

	t.Run("duplicate username is propagated", func(t *testing.T) {
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrUsernameTaken
			},
		}
		uc := NewAuthUsecase(users, newMockSessionRepository(), &mockJWTGenerator{}, time.Hour)

		_, err := uc.Register(ctx, "alice", "pw1", ClientInfo{})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	alice := &entity.User{ID: 7, Username: "alice"}

	t.Run("success", func(t *testing.T) {
		alice.Password = hashOf(t, "pw1")
		users := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				if username == "alice" {
					return alice, nil
				}
				return nil, ErrUserNotFound
			},
		}
		sessions := newMockSessionRepository()
		uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{}, time.Hour)

		pair, err := uc.Login(ctx, "alice", "pw1", ClientInfo{})
		require.NoError(t, err)
		assert.Equal(t, "test-token", pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		alice.Password = hashOf(t, "pw1")
		users := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return alice, nil
			},
		}
		uc := NewAuthUsecase(users, newMockSessionRepository(), &mockJWTGenerator{}, time.Hour)

		_, err := uc.Login(ctx, "alice", "wrongpw", ClientInfo{})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user yields the same error", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, newMockSessionRepository(), &mockJWTGenerator{}, time.Hour)

		_, err := uc.Login(ctx, "nobody", "pw1", ClientInfo{})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthUsecase_Refresh(t *testing.T) {
	ctx := context.Background()

	alice := &entity.User{ID: 7, Username: "alice", Password: "x"}
	users := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			if id == 7 {
				return alice, nil
			}
			return nil, ErrUserNotFound
		},
		FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return alice, nil
		},
	}

	t.Run("rotation revokes the old session and opens a new one", func(t *testing.T) {
		sessions := newMockSessionRepository()
		old := &entity.Session{ID: "old-token", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
		require.NoError(t, sessions.Create(ctx, old))

		uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{}, time.Hour)

		pair, err := uc.Refresh(ctx, "old-token", ClientInfo{})
		require.NoError(t, err)
		assert.NotEqual(t, "old-token", pair.RefreshToken)
		assert.True(t, old.IsRevoked(), "old session must be revoked")

		// Replaying the rotated token fails.
		_, err = uc.Refresh(ctx, "old-token", ClientInfo{})
		assert.ErrorIs(t, err, ErrSessionRevoked)
	})

	t.Run("expired session", func(t *testing.T) {
		sessions := newMockSessionRepository()
		expired := &entity.Session{ID: "expired", UserID: 7, ExpiresAt: time.Now().Add(-time.Minute)}
		require.NoError(t, sessions.Create(ctx, expired))

		uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{}, time.Hour)

		_, err := uc.Refresh(ctx, "expired", ClientInfo{})
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("unknown token", func(t *testing.T) {
		uc := NewAuthUsecase(users, newMockSessionRepository(), &mockJWTGenerator{}, time.Hour)

		_, err := uc.Refresh(ctx, "missing", ClientInfo{})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()

	sessions := newMockSessionRepository()
	s := &entity.Session{ID: "tok", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, sessions.Create(ctx, s))

	uc := NewAuthUsecase(&mockUserRepository{}, sessions, &mockJWTGenerator{}, time.Hour)

	require.NoError(t, uc.Logout(ctx, "tok"))
	assert.True(t, s.IsRevoked())

	// Logging out an unknown token is not an error.
	assert.NoError(t, uc.Logout(ctx, "missing"))
}

func TestAuthUsecase_Register_GeneratorFailure(t *testing.T) {
	users := &mockUserRepository{}
	gen := &mockJWTGenerator{
		GenerateTokenFunc: func(userID uint, username string) (string, error) {
			return "", errors.New("no secret")
		},
	}
	uc := NewAuthUsecase(users, newMockSessionRepository(), gen, time.Hour)

	_, err := uc.Register(context.Background(), "alice", "pw1", ClientInfo{})
	assert.Error(t, err)
}
