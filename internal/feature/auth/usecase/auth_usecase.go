// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"axie_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrUsernameTaken if the username already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user matching the specified username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator defines the interface for access token generation.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT for the given user.
	GenerateToken(userID uint, username string) (string, error)
}

// TokenPair is one access token plus the refresh token that renews it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// ClientInfo carries request metadata recorded on the session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
	refreshTTL   time.Duration
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator, refreshTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
		refreshTTL:   refreshTTL,
	}
}

// Register creates a new user with a hashed password and returns a token
// pair for the fresh account.
func (u *authUsecase) Register(ctx context.Context, username, password string, client ClientInfo) (*TokenPair, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, user, client)
}

// Login authenticates a user and returns a token pair on success.
// A bcrypt comparison runs even when the user does not exist so the
// response time does not reveal which usernames are registered.
func (u *authUsecase) Login(ctx context.Context, username, password string, client ClientInfo) (*TokenPair, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path for
	// unknown usernames.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user, client)
}

// Refresh rotates a refresh session: the presented token is revoked and a
// new token pair is issued.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string, client ClientInfo) (*TokenPair, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if session.IsRevoked() {
		return nil, ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}

	return u.issueTokens(ctx, user, client)
}

// Logout revokes the session behind the presented refresh token.
// An unknown token is treated as already logged out.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// issueTokens generates an access token and opens a new refresh session.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User, client ClientInfo) (*TokenPair, error) {
	access, err := u.jwtGenerator.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        refresh,
		UserID:    user.ID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.refreshTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// newRefreshToken returns 32 random bytes hex-encoded.
func newRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
