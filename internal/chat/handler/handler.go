// Package handler provides HTTP handlers for chat endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/chat/model"
	"github.com/festy23/teamdesk/internal/chat/service"
	"github.com/festy23/teamdesk/internal/middleware"
	"github.com/festy23/teamdesk/internal/response"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// Handler handles HTTP requests for chat endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new chat handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SendMessage handles POST /send/:receiverId request.
// @Summary Send a direct message
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param receiverId path int true "Receiver ID"
// @Param request body model.SendMessageRequest true "Request"
// @Success 201 {object} model.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /send/{receiverId} [post].
func (h *Handler) SendMessage(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	receiverID, ok := response.PathID(c, "receiverId")
	if !ok {
		return
	}

	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), caller, receiverID, req.Text)
	if err != nil {
		h.fail(c, "SendMessage", err)
		return
	}

	c.JSON(http.StatusCreated, model.NewMessageResponse(msg))
}

// History handles GET /history/:userId request.
// @Summary Chat history with a user
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Other user ID"
// @Success 200 {array} model.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /history/{userId} [get].
func (h *Handler) History(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	otherID, ok := response.PathID(c, "userId")
	if !ok {
		return
	}

	msgs, err := h.service.History(c.Request.Context(), caller, otherID)
	if err != nil {
		h.fail(c, "History", err)
		return
	}

	c.JSON(http.StatusOK, model.NewMessageResponses(msgs))
}

// ListConversations handles GET /conversations request.
// @Summary List the caller's conversations
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ConversationResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /conversations [get].
func (h *Handler) ListConversations(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	convs, err := h.service.ListConversations(c.Request.Context(), caller)
	if err != nil {
		h.fail(c, "ListConversations", err)
		return
	}

	resp := make([]model.ConversationResponse, 0, len(convs))
	for i := range convs {
		resp = append(resp, model.NewConversationResponse(&convs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateConversation handles POST /conversations. It answers 201 when the
// conversation is new and 200 with the existing one otherwise.
// @Summary Open a conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateConversationRequest true "Request"
// @Success 200 {object} model.ConversationResponse
// @Success 201 {object} model.ConversationResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /conversations [post].
func (h *Handler) CreateConversation(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	var req model.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	conv, created, err := h.service.GetOrCreateConversation(c.Request.Context(), caller, req.UserID)
	if err != nil {
		h.fail(c, "CreateConversation", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, model.NewConversationResponse(conv))
}

// ListMessages handles GET /conversations/:id/messages request.
// @Summary Messages of a conversation
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Conversation ID"
// @Success 200 {array} model.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /conversations/{id}/messages [get].
func (h *Handler) ListMessages(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	msgs, err := h.service.ListMessages(c.Request.Context(), caller, id)
	if err != nil {
		h.fail(c, "ListMessages", err)
		return
	}

	c.JSON(http.StatusOK, model.NewMessageResponses(msgs))
}

// PostMessage handles POST /conversations/:id/messages request.
// @Summary Post a message to a conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Conversation ID"
// @Param request body model.SendMessageRequest true "Request"
// @Success 201 {object} model.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /conversations/{id}/messages [post].
func (h *Handler) PostMessage(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	h.post(c, caller, id, req.Text)
}

// ListMyMessages handles GET /messages request.
// @Summary Messages across all of the caller's conversations
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /messages [get].
func (h *Handler) ListMyMessages(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	msgs, err := h.service.ListMyMessages(c.Request.Context(), caller)
	if err != nil {
		h.fail(c, "ListMyMessages", err)
		return
	}

	c.JSON(http.StatusOK, model.NewMessageResponses(msgs))
}

// CreateMessage handles POST /messages request.
// @Summary Post a message to a conversation named in the body
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateMessageRequest true "Request"
// @Success 201 {object} model.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /messages [post].
func (h *Handler) CreateMessage(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}

	var req model.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	h.post(c, caller, req.Conversation, req.Text)
}

// MarkRead handles POST /messages/:id/read request.
// @Summary Mark a received message as read
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /messages/{id}/read [post].
func (h *Handler) MarkRead(c *gin.Context) {
	caller, ok := middleware.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	msg, err := h.service.MarkRead(c.Request.Context(), caller, id)
	if err != nil {
		h.fail(c, "MarkRead", err)
		return
	}

	c.JSON(http.StatusOK, model.NewMessageResponse(msg))
}

func (h *Handler) post(c *gin.Context, caller *userModel.User, conversationID uint, text string) {
	msg, err := h.service.PostMessage(c.Request.Context(), caller, conversationID, text)
	if err != nil {
		h.fail(c, "PostMessage", err)
		return
	}
	c.JSON(http.StatusCreated, model.NewMessageResponse(msg))
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, access.ErrForbidden), errors.Is(err, model.ErrNotParticipant):
		response.Forbidden(c, model.ErrNotParticipant.Error())
	case errors.Is(err, model.ErrSelfConversation), errors.Is(err, model.ErrEmptyMessage):
		response.BadRequest(c, err.Error())
	case errors.Is(err, userModel.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, model.ErrConversationNotFound), errors.Is(err, model.ErrMessageNotFound):
		response.NotFound(c, err.Error())
	default:
		h.logger.Errorw(op+" failed", "error", err, "request_id", middleware.RequestID(c))
		response.Internal(c)
	}
}
