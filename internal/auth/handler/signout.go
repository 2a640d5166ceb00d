package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-service/internal/logger"
	"task-service/internal/middleware"
)

// SignOut handles POST /auth/signout. Revocation is idempotent: a token
// that was already superseded or expired still gets a 204.
func (h *Handler) SignOut(c *gin.Context) {
	token := middleware.BearerToken(c.Request)
	if token != "" {
		if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
			logger.Errorf(c.Request.Context(), "signout: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	}

	c.Status(http.StatusNoContent)
}
