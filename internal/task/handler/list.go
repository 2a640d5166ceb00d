package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-service/internal/logger"
	"task-service/internal/task"
)

// List handles GET /tasks. An owner with no tasks gets an empty array,
// not null.
func (h *Handler) List(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListForOwner(c.Request.Context(), userID)
	if err != nil {
		logger.Errorf(c.Request.Context(), "list tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if tasks == nil {
		tasks = []task.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}
