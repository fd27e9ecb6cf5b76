// Package router provides chat module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/chat/handler"
	"github.com/festy23/teamdesk/internal/chat/repository"
	"github.com/festy23/teamdesk/internal/chat/service"
	userRepository "github.com/festy23/teamdesk/internal/user/repository"
)

// RegisterRoutes registers chat module routes behind authMW.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, authMW gin.HandlerFunc) {
	svc := service.New(repository.New(db, logger), userRepository.New(db, logger), logger)
	h := handler.New(svc, logger)

	chat := r.Group("", authMW)
	chat.POST("/send/:receiverId", h.SendMessage)
	chat.GET("/history/:userId", h.History)

	conversations := chat.Group("/conversations")
	conversations.GET("", h.ListConversations)
	conversations.POST("", h.CreateConversation)
	conversations.GET("/:id/messages", h.ListMessages)
	conversations.POST("/:id/messages", h.PostMessage)

	messages := chat.Group("/messages")
	messages.GET("", h.ListMyMessages)
	messages.POST("", h.CreateMessage)
	messages.POST("/:id/read", h.MarkRead)
}
