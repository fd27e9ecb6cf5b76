// Package handler provides HTTP handlers for authentication endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/auth/model"
	"github.com/festy23/teamdesk/internal/auth/service"
	"github.com/festy23/teamdesk/internal/middleware"
	"github.com/festy23/teamdesk/internal/response"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// Handler handles HTTP requests for authentication endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new authentication handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Login handles POST /login request.
// @Summary Obtain an access and refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /login [post].
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, userModel.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid credentials")
			return
		}
		h.logger.Errorw("Login failed", "error", err, "request_id", middleware.RequestID(c))
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /token/refresh request.
// @Summary Exchange a refresh token for a new access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest true "Request"
// @Success 200 {object} model.RefreshResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /token/refresh [post].
func (h *Handler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRefreshToken) {
			response.Unauthorized(c, "token is invalid or expired")
			return
		}
		h.logger.Errorw("Refresh failed", "error", err, "request_id", middleware.RequestID(c))
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}
