// Package testdb opens migrated in-memory SQLite databases for tests.
package testdb

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/festy23/teamdesk/internal/database/database"
	"github.com/festy23/teamdesk/internal/database/migrate"
	"github.com/festy23/teamdesk/internal/database/pool"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// DSN enables foreign keys so cascades behave as they do on Postgres.
const DSN = "file::memory:?_foreign_keys=on"

// New returns an empty, fully migrated database closed at test cleanup.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(DSN), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, pool.SetupConnectionPool(db, pool.SQLitePoolConfig()))
	require.NoError(t, migrate.AutoMigrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// UserOption customizes a seeded user.
type UserOption func(*userModel.User)

// Admin marks the seeded user as administrator.
func Admin() UserOption {
	return func(u *userModel.User) { u.IsAdmin = true }
}

// TeamLead marks the seeded user as team lead.
func TeamLead() UserOption {
	return func(u *userModel.User) { u.IsTeamLead = true }
}

// Inactive seeds a disabled account.
func Inactive() UserOption {
	return func(u *userModel.User) { u.IsActive = false }
}

// WithPassword stores a bcrypt hash of password.
func WithPassword(password string) UserOption {
	return func(u *userModel.User) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		h := string(hash)
		u.PasswordHash = &h
	}
}

// SeedUser inserts an active user with the given handle and email <handle>@example.com.
func SeedUser(t testing.TB, db *gorm.DB, userID string, opts ...UserOption) *userModel.User {
	t.Helper()

	u := &userModel.User{
		UserID:   userID,
		Email:    fmt.Sprintf("%s@example.com", userID),
		IsActive: true,
	}
	for _, opt := range opts {
		opt(u)
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
