package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tugaskita/tugaskita/internal/application"
	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/interface/middleware"
	"github.com/tugaskita/tugaskita/internal/shared"
	"github.com/tugaskita/tugaskita/pkg/response"
	"github.com/tugaskita/tugaskita/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	OwnerName   string    `json:"owner_name" binding:"required"`
	TaskDate    time.Time `json:"task_date" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Subject     string    `json:"subject" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Status      string    `json:"status" binding:"omitempty,taskstatus"`
}

type updateTaskRequest struct {
	Title       string    `json:"title" binding:"required"`
	Subject     string    `json:"subject" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Status      string    `json:"status" binding:"required,taskstatus"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	OwnerEmail  string    `json:"owner_email"`
	OwnerName   string    `json:"owner_name"`
	TaskDate    time.Time `json:"task_date"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTaskResponse(t *entity.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		OwnerEmail:  t.OwnerEmail,
		OwnerName:   t.OwnerName,
		TaskDate:    t.TaskDate,
		Title:       t.Title,
		Subject:     t.Subject,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt,
	}
}

// Create handles POST /tasks. Only the "user" role may create tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		serviceError(c, shared.ErrInvalidToken)
		return
	}
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			response.ErrorBody{Code: shared.CodeOf(shared.ErrInvalidInput), Details: validation.ToDetails(err)})
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), caller, application.TaskDraft{
		OwnerName:   req.OwnerName,
		TaskDate:    req.TaskDate,
		Title:       req.Title,
		Subject:     req.Subject,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toTaskResponse(t), "task created", nil)
}

// List handles GET /tasks with role-scoped visibility.
func (h *TaskHandler) List(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		serviceError(c, shared.ErrInvalidToken)
		return
	}
	tasks, err := h.Svc.List(c.Request.Context(), caller)
	if err != nil {
		serviceError(c, err)
		return
	}
	out := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskResponse(&tasks[i]))
	}
	response.Success(c, http.StatusOK, out, "tasks", map[string]any{"count": len(out)})
}

// Update handles PUT /tasks/:id. Absent and inaccessible tasks are
// indistinguishable 404s.
func (h *TaskHandler) Update(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		serviceError(c, shared.ErrInvalidToken)
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			response.ErrorBody{Code: shared.CodeOf(shared.ErrInvalidInput), Details: validation.ToDetails(err)})
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), caller, c.Param("id"), application.TaskReplacement{
		Title:       req.Title,
		Subject:     req.Subject,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toTaskResponse(t), "task updated", nil)
}

// Delete handles DELETE /tasks/:id under the same 404 masking as Update.
func (h *TaskHandler) Delete(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		serviceError(c, shared.ErrInvalidToken)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), caller, c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "task deleted", nil)
}
