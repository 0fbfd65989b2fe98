package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/tugaskita/tugaskita/internal/application"
	handlers "github.com/tugaskita/tugaskita/internal/interface/http"
	"github.com/tugaskita/tugaskita/internal/interface/middleware"
)

// TaskModule exposes access-controlled task CRUD.
// POST /tasks, GET /tasks, PUT /tasks/:id, DELETE /tasks/:id
type TaskModule struct {
	Handler *handlers.TaskHandler
	Auth    *application.AuthService
}

func NewTaskModule(h *handlers.TaskHandler, auth *application.AuthService) *TaskModule {
	return &TaskModule{Handler: h, Auth: auth}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	protected := rg.Group("/tasks")
	protected.Use(middleware.Auth(m.Auth))
	{
		protected.POST("", m.Handler.Create)
		protected.GET("", m.Handler.List)
		protected.PUT("/:id", m.Handler.Update)
		protected.DELETE("/:id", m.Handler.Delete)
	}
}
