package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tugaskita/tugaskita/pkg/response"
)

// HomeModule serves the unauthenticated landing payload.
type HomeModule struct{}

func NewHomeModule() *HomeModule { return &HomeModule{} }

func (m *HomeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"greeting": "Welcome!",
			"message":  "Welcome to the TugasKita task tracker API",
		}, "ok", nil)
	})
}
