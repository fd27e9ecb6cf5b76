// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/middleware"
	"github.com/festy23/teamdesk/internal/response"
	teamModel "github.com/festy23/teamdesk/internal/team/model"
	"github.com/festy23/teamdesk/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams request.
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body teamModel.CreateTeamRequest true "Request"
// @Success 201 {object} teamModel.TeamResponse
// @Failure 400 {object} response.ErrorResponse "Unknown member or invalid body"
// @Failure 403 {object} response.ErrorResponse "Caller is neither admin nor team lead"
// @Router /teams [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateTeam(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), caller, &req)
	if err != nil {
		h.fail(c, "CreateTeam", err)
		return
	}

	c.JSON(http.StatusCreated, teamModel.NewTeamResponse(team))
}

// ListTeams handles GET /teams request.
// @Summary List the caller's teams
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} teamModel.TeamResponse
// @Router /teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeams(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	teams, err := h.service.ListTeams(c.Request.Context(), caller)
	if err != nil {
		h.fail(c, "ListTeams", err)
		return
	}

	resp := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		resp = append(resp, teamModel.NewTeamResponse(&teams[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetTeam handles GET /teams/:id request.
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} teamModel.TeamResponse
// @Failure 404 {object} response.ErrorResponse "Team not found or not visible"
// @Router /teams/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), caller, id)
	if err != nil {
		h.fail(c, "GetTeam", err)
		return
	}

	c.JSON(http.StatusOK, teamModel.NewTeamResponse(team))
}

// UpdateTeam handles PUT /teams/:id request.
// @Summary Replace a team's fields
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param request body teamModel.UpdateTeamRequest true "Request"
// @Success 200 {object} teamModel.TeamResponse
// @Failure 403 {object} response.ErrorResponse "Caller did not create the team"
// @Failure 404 {object} response.ErrorResponse "Team not found"
// @Router /teams/{id} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateTeam(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), caller, id, &req)
	if err != nil {
		h.fail(c, "UpdateTeam", err)
		return
	}

	c.JSON(http.StatusOK, teamModel.NewTeamResponse(team))
}

// DeleteTeam handles DELETE /teams/:id request.
// @Summary Delete a team
// @Tags Teams
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 204
// @Failure 403 {object} response.ErrorResponse "Caller did not create the team"
// @Failure 404 {object} response.ErrorResponse "Team not found"
// @Router /teams/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteTeam(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), caller, id); err != nil {
		h.fail(c, "DeleteTeam", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, access.ErrForbidden):
		response.Forbidden(c, "you do not have permission to perform this action")
	case errors.Is(err, teamModel.ErrTeamNotFound):
		response.NotFound(c, "team not found")
	case errors.Is(err, teamModel.ErrInvalidTeamName):
		response.BadRequest(c, "name is required")
	case errors.Is(err, teamModel.ErrUnknownMember):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Errorw("error in "+op, "error", err, "request_id", middleware.RequestID(c))
		response.Internal(c)
	}
}
