package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/tugaskita/tugaskita/internal/application"
	handlers "github.com/tugaskita/tugaskita/internal/interface/http"
	"github.com/tugaskita/tugaskita/internal/interface/middleware"
)

// UserModule exposes the authenticated identity surface.
// GET /users/me
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    *application.AuthService
}

func NewUserModule(h *handlers.UserHandler, auth *application.AuthService) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	protected := rg.Group("/users")
	protected.Use(middleware.Auth(m.Auth))
	protected.GET("/me", m.Handler.Me)
}
