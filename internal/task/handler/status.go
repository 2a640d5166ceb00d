package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-service/internal/logger"
	"task-service/internal/task"
)

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /tasks/:id. A task owned by another user
// and a task that does not exist produce the same 404.
func (h *Handler) UpdateStatus(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.tasks.UpdateStatus(
		c.Request.Context(),
		userID,
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, task.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		default:
			logger.Errorf(c.Request.Context(), "update task: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, t)
}
