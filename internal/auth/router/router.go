// Package router provides authentication routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/auth/handler"
	"github.com/festy23/teamdesk/internal/auth/service"
	userRepository "github.com/festy23/teamdesk/internal/user/repository"
	userService "github.com/festy23/teamdesk/internal/user/service"
	"github.com/festy23/teamdesk/pkg/token"
)

// RegisterRoutes registers the public login and refresh routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, bcryptCost int, tokens *token.Manager) {
	users := userService.New(userRepository.New(db, logger), bcryptCost, logger)
	svc := service.New(users, tokens, logger)
	h := handler.New(svc, logger)

	r.POST("/login", h.Login)
	r.POST("/token/refresh", h.Refresh)
}
