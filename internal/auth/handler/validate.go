package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-service/internal/auth/credentials"
	"task-service/internal/logger"
	"task-service/internal/middleware"
)

// Validate handles GET /auth/validate. The gate has already resolved
// the token; this only maps the identity back to its user record. A
// session whose user vanished resolves to 404, not 401.
func (h *Handler) Validate(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.credentials.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, credentials.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		logger.Errorf(c.Request.Context(), "validate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
