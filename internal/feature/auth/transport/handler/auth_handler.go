// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"axie_backend/internal/api"
	"axie_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns a token pair.
	Register(ctx context.Context, username, password string, client usecase.ClientInfo) (*usecase.TokenPair, error)
	// Login authenticates a user and returns a token pair on success.
	Login(ctx context.Context, username, password string, client usecase.ClientInfo) (*usecase.TokenPair, error)
	// Refresh rotates a refresh session and returns a new token pair.
	Refresh(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.TokenPair, error)
	// Logout revokes the session behind the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the injected usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func clientInfo(c *gin.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

// Register handles POST /register.
// Returns 201 with a token pair, or 400 when the username is taken.
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	pair, err := h.auth.Register(c.Request.Context(), req.Username, req.Password, clientInfo(c))
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Username already exists."})
			return
		}
		slog.Error("register failed", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		return
	}

	slog.Info("user registered", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.TokenResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Login handles POST /login.
// Returns 200 with a token pair, or 400 when the credentials are invalid.
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Username, req.Password, clientInfo(c))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// The same response for unknown users and wrong passwords.
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid credentials."})
			return
		}
		slog.Error("login failed", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Refresh handles POST /refresh.
// Returns 200 with a fresh token pair, or 401 when the session is unknown,
// expired or revoked.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req api.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken, clientInfo(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound),
			errors.Is(err, usecase.ErrSessionExpired),
			errors.Is(err, usecase.ErrSessionRevoked):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid refresh token"})
		default:
			slog.Error("refresh failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, api.TokenResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req api.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		slog.Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
