// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/user/handler"
	"github.com/festy23/teamdesk/internal/user/repository"
	"github.com/festy23/teamdesk/internal/user/service"
)

// RegisterRoutes registers user module routes. Registration and first-password
// setup are public; everything under /users requires authMW.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, bcryptCost int, authMW gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, bcryptCost, logger)
	h := handler.New(svc, logger)

	r.POST("/register", h.Register)
	r.POST("/set-password", h.SetPassword)

	users := r.Group("/users", authMW)
	users.GET("", h.ListUsers)
	users.POST("", h.CreateUser)
	users.GET("/me", h.Me)
	users.GET("/:id", h.GetUser)
	users.PATCH("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}
