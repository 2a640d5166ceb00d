package handler

import (
	"github.com/gin-gonic/gin"

	"task-service/internal/auth/credentials"
	"task-service/internal/session"
)

type Handler struct {
	credentials *credentials.Service
	sessions    *session.Manager
}

func NewHandler(
	credentialService *credentials.Service,
	sessionManager *session.Manager,
) *Handler {
	return &Handler{
		credentials: credentialService,
		sessions:    sessionManager,
	}
}

// RegisterRoutes mounts the unauthenticated surface: registration and
// sign-in never carry a bearer token.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/users", h.Register)
	r.POST("/auth/signin", h.SignIn)
}

// RegisterProtectedRoutes mounts the routes that run behind the
// authorization gate.
func (h *Handler) RegisterProtectedRoutes(g *gin.RouterGroup) {
	g.GET("/auth/validate", h.Validate)
	g.POST("/auth/signout", h.SignOut)
}
