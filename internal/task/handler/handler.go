// Package handler provides HTTP handlers for task endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/middleware"
	"github.com/festy23/teamdesk/internal/response"
	"github.com/festy23/teamdesk/internal/task/model"
	"github.com/festy23/teamdesk/internal/task/service"
)

// Handler handles HTTP requests for task endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new task handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTask handles POST /tasks request.
// @Summary Create a task with optional subtasks
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.TaskRequest true "Request"
// @Success 201 {object} model.TaskResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Team gate failed"
// @Router /tasks [post].
func (h *Handler) CreateTask(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	var req model.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), caller, &req)
	if err != nil {
		h.fail(c, "CreateTask", err)
		return
	}

	c.JSON(http.StatusCreated, model.NewTaskResponse(task))
}

// ListTasks handles GET /tasks request.
// @Summary List the caller's top-level tasks
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TaskResponse
// @Router /tasks [get].
func (h *Handler) ListTasks(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), caller)
	if err != nil {
		h.fail(c, "ListTasks", err)
		return
	}

	resp := make([]model.TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, model.NewTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetTask handles GET /tasks/:id request.
// @Summary Get an owned task
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} model.TaskResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [get].
func (h *Handler) GetTask(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), caller, id)
	if err != nil {
		h.fail(c, "GetTask", err)
		return
	}

	c.JSON(http.StatusOK, model.NewTaskResponse(task))
}

// UpdateTask handles PUT /tasks/:id request.
// @Summary Replace a task and upsert its subtasks
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body model.TaskRequest true "Request"
// @Success 200 {object} model.TaskResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [put].
func (h *Handler) UpdateTask(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	var req model.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), caller, id, &req)
	if err != nil {
		h.fail(c, "UpdateTask", err)
		return
	}

	c.JSON(http.StatusOK, model.NewTaskResponse(task))
}

// DeleteTask handles DELETE /tasks/:id request.
// @Summary Delete a task and its subtasks
// @Tags Tasks
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [delete].
func (h *Handler) DeleteTask(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), caller, id); err != nil {
		h.fail(c, "DeleteTask", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddSubtask handles POST /tasks/:id/add_subtask request.
// @Summary Attach a subtask to a top-level task
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Parent task ID"
// @Param request body model.SubtaskRequest true "Request"
// @Success 201 {object} model.DetailResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Parent missing, not owned or itself a subtask"
// @Router /tasks/{id}/add_subtask [post].
func (h *Handler) AddSubtask(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	var req model.SubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if _, err := h.service.AddSubtask(c.Request.Context(), caller, id, &req); err != nil {
		h.fail(c, "AddSubtask", err)
		return
	}

	c.JSON(http.StatusCreated, model.DetailResponse{Detail: "Subtask created successfully"})
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, access.ErrForbidden):
		response.Forbidden(c, "you do not have permission to perform this action")
	case errors.Is(err, model.ErrTaskNotFound):
		response.NotFound(c, "task not found")
	case errors.Is(err, model.ErrInvalidTask):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrNestedSubtask):
		response.BadRequest(c, "subtasks cannot have subtasks")
	default:
		h.logger.Errorw(op+" failed", "error", err, "request_id", middleware.RequestID(c))
		response.Internal(c)
	}
}
