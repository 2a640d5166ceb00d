package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-service/internal/middleware"
	"task-service/internal/task"
)

type Handler struct {
	tasks *task.Service
}

func NewHandler(taskService *task.Service) *Handler {
	return &Handler{tasks: taskService}
}

// RegisterProtectedRoutes mounts the task surface behind the
// authorization gate. All three routes derive the owner from the
// request context, never from the payload.
func (h *Handler) RegisterProtectedRoutes(g *gin.RouterGroup) {
	g.GET("/tasks", h.List)
	g.POST("/tasks", h.Create)
	g.PATCH("/tasks/:id", h.UpdateStatus)
}

// owner returns the authenticated user ID, or aborts with 401. The gate
// always runs first, so the failure branch only guards against routes
// mounted outside it by mistake.
func owner(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}

	return userID, true
}
