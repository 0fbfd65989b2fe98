package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tugaskita/tugaskita/internal/container"
	handlers "github.com/tugaskita/tugaskita/internal/interface/http"
	"github.com/tugaskita/tugaskita/internal/interface/middleware"
)

// AuthModule exposes the public credential endpoints.
// POST /auth/register, POST /auth/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints take the brunt of brute force; keep them tight.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
