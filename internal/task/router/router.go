// Package router provides task module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/task/handler"
	"github.com/festy23/teamdesk/internal/task/repository"
	"github.com/festy23/teamdesk/internal/task/service"
	teamRepository "github.com/festy23/teamdesk/internal/team/repository"
)

// RegisterRoutes registers task module routes behind authMW.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, authMW gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, teamRepository.New(db, logger), db, logger)
	h := handler.New(svc, logger)

	tasks := r.Group("/tasks", authMW)
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
	tasks.POST("/:id/add_subtask", h.AddSubtask)
}
