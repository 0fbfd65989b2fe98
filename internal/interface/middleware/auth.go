package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tugaskita/tugaskita/internal/application"
	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/shared"
	"github.com/tugaskita/tugaskita/pkg/response"
)

const ctxCallerKey = "caller"

// Auth resolves the Authorization: Bearer token into an authenticated
// identity and stores it in the Gin context. It is the sole authentication
// gate: every protected route passes through here before any handler runs.
func Auth(authSvc *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Abort(c, shared.StatusOf(shared.ErrInvalidToken), "missing bearer token",
				response.ErrorBody{Code: shared.CodeOf(shared.ErrInvalidToken)})
			return
		}
		caller, err := authSvc.ResolveCaller(c.Request.Context(), token)
		if err != nil {
			response.Abort(c, shared.StatusOf(err), err.Error(),
				response.ErrorBody{Code: shared.CodeOf(err)})
			return
		}
		c.Set(ctxCallerKey, caller)
		c.Next()
	}
}

// Caller returns the authenticated identity set by Auth, or nil when the
// request did not pass through it.
func Caller(c *gin.Context) *entity.User {
	v, ok := c.Get(ctxCallerKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
