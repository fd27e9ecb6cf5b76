// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/statistics/handler"
	"github.com/festy23/teamdesk/internal/statistics/repository"
	"github.com/festy23/teamdesk/internal/statistics/service"
	todoRepository "github.com/festy23/teamdesk/internal/todo/repository"
)

// RegisterRoutes registers statistics module routes behind authMW.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, authMW gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, todoRepository.New(db, logger), logger)
	h := handler.New(svc, logger)

	stats := r.Group("/stats", authMW)
	stats.GET("/summary", h.GetSummary)
}
