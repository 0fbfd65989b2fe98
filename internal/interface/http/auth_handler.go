package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tugaskita/tugaskita/internal/application"
	"github.com/tugaskita/tugaskita/internal/shared"
	"github.com/tugaskita/tugaskita/pkg/response"
	"github.com/tugaskita/tugaskita/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required,role"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			response.ErrorBody{Code: shared.CodeOf(shared.ErrInvalidInput), Details: validation.ToDetails(err)})
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role.String(),
	}, "user registered", nil)
}

// Login handles POST /auth/login. The body is form-encoded username/password
// (the username field carries the email).
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			response.ErrorBody{Code: shared.CodeOf(shared.ErrInvalidInput), Details: map[string]string{
				"username": "is required",
				"password": "is required",
			}})
		return
	}
	token, exp, err := h.Svc.Login(c.Request.Context(), email, password)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	}, "login successful", map[string]any{"expires_at": exp})
}

// serviceError maps a taxonomy error onto the response envelope.
func serviceError(c *gin.Context, err error) {
	response.Error[any](c, shared.StatusOf(err), err.Error(),
		response.ErrorBody{Code: shared.CodeOf(err)})
}
