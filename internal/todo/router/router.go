// Package router provides todo module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/todo/handler"
	"github.com/festy23/teamdesk/internal/todo/repository"
	"github.com/festy23/teamdesk/internal/todo/service"
)

// RegisterRoutes registers todo module routes behind authMW.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, authMW gin.HandlerFunc) {
	h := handler.New(service.New(repository.New(db, logger), logger), logger)

	todos := r.Group("/todos", authMW)
	todos.GET("", h.ListTodos)
	todos.POST("", h.CreateTodo)
	todos.PUT("/:id", h.CompleteTodo)
	todos.PATCH("/:id", h.CompleteTodo)
}
