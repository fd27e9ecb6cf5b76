// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/middleware"
	"github.com/festy23/teamdesk/internal/response"
	"github.com/festy23/teamdesk/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetSummary handles GET /stats/summary request.
// @Summary Counters for the current user
// @Tags Statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SummaryResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /stats/summary [get].
func (h *Handler) GetSummary(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	resp, err := h.service.GetSummary(c.Request.Context(), caller)
	if err != nil {
		if errors.Is(err, access.ErrForbidden) {
			response.Forbidden(c, "you do not have permission to perform this action")
			return
		}
		h.logger.Errorw("error getting summary statistics", "error", err, "request_id", middleware.RequestID(c))
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}
