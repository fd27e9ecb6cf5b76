// Package handler provides HTTP handlers for todo endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/middleware"
	"github.com/festy23/teamdesk/internal/response"
	"github.com/festy23/teamdesk/internal/todo/model"
	"github.com/festy23/teamdesk/internal/todo/service"
)

// Handler handles HTTP requests for todo endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new todo handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListTodos handles GET /todos request.
// @Summary List unfinished todos
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param date query string false "Exact date, YYYY-MM-DD"
// @Success 200 {array} model.TodoResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /todos [get].
func (h *Handler) ListTodos(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	todos, err := h.service.ListTodos(c.Request.Context(), caller, c.Query("date"))
	if err != nil {
		h.fail(c, "ListTodos", err)
		return
	}

	resp := make([]model.TodoResponse, 0, len(todos))
	for i := range todos {
		resp = append(resp, model.NewTodoResponse(&todos[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTodo handles POST /todos request.
// @Summary Create a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTodoRequest true "Request"
// @Success 201 {object} model.TodoResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /todos [post].
func (h *Handler) CreateTodo(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	var req model.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	todo, err := h.service.CreateTodo(c.Request.Context(), caller, &req)
	if err != nil {
		h.fail(c, "CreateTodo", err)
		return
	}

	c.JSON(http.StatusCreated, model.NewTodoResponse(todo))
}

// CompleteTodo handles PUT and PATCH /todos/:id. Completing is the only
// change a todo accepts, so any body is ignored.
// @Summary Mark a todo as done
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [patch].
func (h *Handler) CompleteTodo(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.CompleteTodo(c.Request.Context(), caller, id); err != nil {
		h.fail(c, "CompleteTodo", err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "completed"})
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, access.ErrForbidden):
		response.Forbidden(c, "you do not have permission to perform this action")
	case errors.Is(err, model.ErrTodoNotFound):
		response.NotFound(c, "todo not found")
	case errors.Is(err, model.ErrInvalidDate):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Errorw(op+" failed", "error", err, "request_id", middleware.RequestID(c))
		response.Internal(c)
	}
}
