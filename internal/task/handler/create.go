package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-service/internal/logger"
	"task-service/internal/task"
)

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// Create handles POST /tasks. The due date is ISO-8601; validation
// happens before anything is written.
func (h *Handler) Create(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.tasks.Create(
		c.Request.Context(),
		userID,
		req.Title,
		req.Description,
		req.DueDate,
	)
	if err != nil {
		if errors.Is(err, task.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task"})
			return
		}

		logger.Errorf(c.Request.Context(), "create task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, t)
}
