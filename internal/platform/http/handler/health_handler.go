// Package handler provides platform-level HTTP handlers.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
