// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/middleware"
	"github.com/festy23/teamdesk/internal/response"
	"github.com/festy23/teamdesk/internal/user/model"
	"github.com/festy23/teamdesk/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /register request.
// @Summary Register a new account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Request"
// @Success 201 {object} model.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /register [post].
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "Register", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// SetPassword handles POST /set-password request.
// Both failures are reported as validation errors.
// @Summary Set the first password of a pre-created account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.SetPasswordRequest true "Request"
// @Success 200 {object} model.DetailResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /set-password [post].
func (h *Handler) SetPassword(c *gin.Context) {
	var req model.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	err := h.service.SetPassword(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, model.DetailResponse{Detail: "Password set successfully"})
	case errors.Is(err, model.ErrUserNotFound):
		response.BadRequest(c, "user not found")
	case errors.Is(err, model.ErrPasswordAlreadySet):
		response.BadRequest(c, "password already set")
	default:
		h.fail(c, "SetPassword", err)
	}
}

// CreateUser handles POST /users request.
// @Summary Create an account without a password
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateUserRequest true "Request"
// @Success 201 {object} model.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users [post].
func (h *Handler) CreateUser(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), caller, &req)
	if err != nil {
		h.fail(c, "CreateUser", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers handles GET /users request.
// @Summary List all users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UsersResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users [get].
func (h *Handler) ListUsers(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	users, err := h.service.ListUsers(c.Request.Context(), caller)
	if err != nil {
		h.fail(c, "ListUsers", err)
		return
	}

	c.JSON(http.StatusOK, model.UsersResponse{Users: users})
}

// Me handles GET /users/me request.
// @Summary Current user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Router /users/me [get].
func (h *Handler) Me(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, caller)
}

// GetUser handles GET /users/:id request.
// @Summary Get a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User primary key"
// @Success 200 {object} model.User
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get].
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "GetUser", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PATCH /users/:id request.
// @Summary Partially update a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User primary key"
// @Param request body model.UpdateUserRequest true "Request"
// @Success 200 {object} model.User
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [patch].
func (h *Handler) UpdateUser(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), caller, id, &req)
	if err != nil {
		h.fail(c, "UpdateUser", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id request.
// @Summary Delete a user
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User primary key"
// @Success 204
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [delete].
func (h *Handler) DeleteUser(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), caller, id); err != nil {
		h.fail(c, "DeleteUser", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, access.ErrForbidden):
		response.Forbidden(c, "you do not have permission to perform this action")
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, model.ErrUserExists):
		response.Conflict(c, "user with this user_id or email already exists")
	case errors.Is(err, model.ErrInvalidUserID):
		response.BadRequest(c, "user_id must not be blank")
	default:
		h.logger.Errorw(op+" failed", "error", err, "request_id", middleware.RequestID(c))
		response.Internal(c)
	}
}
