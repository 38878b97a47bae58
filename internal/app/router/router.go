// Package router assembles the Gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "axie_backend/internal/feature/auth/transport/handler"
	axieshandler "axie_backend/internal/feature/axies/transport/handler"
	contracthandler "axie_backend/internal/feature/contract/transport/handler"
	"axie_backend/internal/platform/http/handler"
	jwtmw "axie_backend/internal/platform/jwt"
)

// NewRouter wires the public and bearer-gated routes.
func NewRouter(jwtSecret string, auth *authhandler.AuthHandler,
	axies *axieshandler.AxiesHandler, contract *contracthandler.ContractHandler) *gin.Engine {
	r := gin.Default()

	// No auth required
	r.GET("/healthz", handler.Health)
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.Refresh)
	r.POST("/logout", auth.Logout)

	// Bearer token required for everything else
	gated := r.Group("/")
	gated.Use(jwtmw.AuthRequired(jwtSecret))
	{
		gated.POST("/fetch-axie-data", axies.Fetch)
		gated.GET("/get-axie-data", axies.Get)
		gated.GET("/get-smart-contract-data", contract.Get)
	}

	return r
}
