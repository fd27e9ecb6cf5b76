// Package migrate provides database migration management.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	chatModel "github.com/festy23/teamdesk/internal/chat/model"
	"github.com/festy23/teamdesk/internal/database/config"
	taskModel "github.com/festy23/teamdesk/internal/task/model"
	teamModel "github.com/festy23/teamdesk/internal/team/model"
	todoModel "github.com/festy23/teamdesk/internal/todo/model"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// GetMigrationsPath returns the default path to migrations directory.
func GetMigrationsPath() string {
	return config.GetEnv("MIGRATIONS_PATH", "migrations")
}

// Models returns every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&userModel.User{},
		&teamModel.Team{},
		&taskModel.Task{},
		&todoModel.Todo{},
		&chatModel.Conversation{},
		&chatModel.Message{},
	}
}

// AutoMigrate creates or updates the schema from the gorm models.
// Used for SQLite and for local development; Postgres deployments use Migrate.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}
	return nil
}

// Run brings the schema up to date for the configured driver.
func Run(db *gorm.DB, cfg config.Config) error {
	if cfg.Driver == config.DriverSQLite || cfg.AutoMigrate {
		return AutoMigrate(db)
	}
	return Migrate(db)
}

// Migrate applies database migrations from the migrations directory using golang-migrate.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	migrationsPath, err := filepath.Abs(GetMigrationsPath())
	if err != nil {
		return fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
