package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tugaskita/tugaskita/internal/application"
	"github.com/tugaskita/tugaskita/internal/interface/middleware"
	"github.com/tugaskita/tugaskita/internal/shared"
	"github.com/tugaskita/tugaskita/pkg/response"
)

type UserHandler struct {
	Activity *application.ActivityRecorder
	Logger   *logrus.Logger
}

func NewUserHandler(activity *application.ActivityRecorder, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Activity: activity, Logger: logger}
}

// Me handles GET /users/me. Revealing the caller's own identity still
// leaves an activity trace.
func (h *UserHandler) Me(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		serviceError(c, shared.ErrInvalidToken)
		return
	}
	h.Activity.Record(c.Request.Context(), "get_profile", caller.Email, map[string]any{})
	response.Success(c, http.StatusOK, gin.H{
		"name":  caller.Name,
		"email": caller.Email,
		"role":  caller.Role.String(),
	}, "profile", nil)
}
