// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRouter "github.com/festy23/teamdesk/internal/auth/router"
	chatRouter "github.com/festy23/teamdesk/internal/chat/router"
	"github.com/festy23/teamdesk/internal/config"
	dbConfig "github.com/festy23/teamdesk/internal/database/config"
	"github.com/festy23/teamdesk/internal/database/database"
	"github.com/festy23/teamdesk/internal/database/migrate"
	"github.com/festy23/teamdesk/internal/health"
	"github.com/festy23/teamdesk/internal/middleware"
	statisticsRouter "github.com/festy23/teamdesk/internal/statistics/router"
	taskRouter "github.com/festy23/teamdesk/internal/task/router"
	teamRouter "github.com/festy23/teamdesk/internal/team/router"
	todoRouter "github.com/festy23/teamdesk/internal/todo/router"
	userRepository "github.com/festy23/teamdesk/internal/user/repository"
	userRouter "github.com/festy23/teamdesk/internal/user/router"
	"github.com/festy23/teamdesk/pkg/logger"
	"github.com/festy23/teamdesk/pkg/token"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.SugaredLogger) error {
	dbCfg := dbConfig.LoadConfigFromEnv()
	db, err := database.NewWithConfig(dbCfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warnw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Run(db, dbCfg); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      newRouter(cfg, db, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("server listening", "addr", srv.Addr, "gin_mode", cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Infow("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// newRouter assembles the middleware chain and every module's routes.
func newRouter(cfg config.Config, db *gorm.DB, logger *zap.SugaredLogger) *gin.Engine {
	tokens := token.NewManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	authMW := middleware.Auth(tokens, userRepository.New(db, logger), logger)

	r := gin.New()
	r.Use(middleware.RequestIDs(), middleware.Logger(logger), middleware.Recovery(logger))

	health.RegisterRoutes(r, db, logger)
	authRouter.RegisterRoutes(r, db, logger, cfg.Auth.BcryptCost, tokens)
	userRouter.RegisterRoutes(r, db, logger, cfg.Auth.BcryptCost, authMW)
	teamRouter.RegisterRoutes(r, db, logger, authMW)
	taskRouter.RegisterRoutes(r, db, logger, authMW)
	todoRouter.RegisterRoutes(r, db, logger, authMW)
	chatRouter.RegisterRoutes(r, db, logger, authMW)
	statisticsRouter.RegisterRoutes(r, db, logger, authMW)

	return r
}
