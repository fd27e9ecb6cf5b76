// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/team/handler"
	"github.com/festy23/teamdesk/internal/team/repository"
	"github.com/festy23/teamdesk/internal/team/service"
	userRepository "github.com/festy23/teamdesk/internal/user/repository"
)

// RegisterRoutes registers team module routes behind authMW.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, authMW gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, userRepository.New(db, logger), db, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams", authMW)
	teams.GET("", h.ListTeams)
	teams.POST("", h.CreateTeam)
	teams.GET("/:id", h.GetTeam)
	teams.PUT("/:id", h.UpdateTeam)
	teams.DELETE("/:id", h.DeleteTeam)
}
