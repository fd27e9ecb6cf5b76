// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/database/dberr"
	"github.com/festy23/teamdesk/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByID finds user by primary key.
	GetByID(ctx context.Context, id uint) (*model.User, error)

	// GetByUserID finds user by login handle.
	GetByUserID(ctx context.Context, userID string) (*model.User, error)

	// GetByUserIDAndEmail finds the user matching both handle and email.
	GetByUserIDAndEmail(ctx context.Context, userID, email string) (*model.User, error)

	// GetByUserIDs returns the users with the given handles, in no particular order.
	GetByUserIDs(ctx context.Context, userIDs []string) ([]model.User, error)

	// List returns all users ordered by id.
	List(ctx context.Context) ([]model.User, error)

	// Update saves email and flag changes.
	Update(ctx context.Context, user *model.User) error

	// SetPassword stores the first password hash and activates the account.
	SetPassword(ctx context.Context, id uint, hash string) error

	// Delete removes a user together with the rows they own.
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Create called", "user_id", user.UserID)

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if dberr.IsDuplicate(err) {
			r.logger.Debugw("Create user already exists", "user_id", user.UserID)
			return model.ErrUserExists
		}
		r.logger.Errorw("Create database error", "user_id", user.UserID, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "id", user.ID, "user_id", user.UserID)
	return nil
}

// GetByID finds user by primary key.
func (r *repository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	return r.first("GetByID", r.db.WithContext(ctx).Where("id = ?", id))
}

// GetByUserID finds user by login handle.
func (r *repository) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	return r.first("GetByUserID", r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// GetByUserIDAndEmail finds the user matching both handle and email.
func (r *repository) GetByUserIDAndEmail(ctx context.Context, userID, email string) (*model.User, error) {
	return r.first("GetByUserIDAndEmail",
		r.db.WithContext(ctx).Where("user_id = ? AND email = ?", userID, email))
}

func (r *repository) first(op string, query *gorm.DB) (*model.User, error) {
	var user model.User
	err := query.First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw(op+" user not found")
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw(op+" database error", "error", err)
		return nil, err
	}
	return &user, nil
}

// GetByUserIDs returns the users with the given handles.
func (r *repository) GetByUserIDs(ctx context.Context, userIDs []string) ([]model.User, error) {
	r.logger.Debugw("GetByUserIDs called", "count", len(userIDs))

	users := []model.User{}
	if len(userIDs) == 0 {
		return users, nil
	}

	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		r.logger.Errorw("GetByUserIDs database error", "error", err)
		return nil, err
	}

	return users, nil
}

// List returns all users ordered by id.
func (r *repository) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}
	return users, nil
}

// Update saves email and flag changes.
func (r *repository) Update(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Update called", "id", user.ID)

	result := r.db.WithContext(ctx).
		Model(user).
		Select("email", "is_admin", "is_teamlead", "is_active", "is_staff", "updated_at").
		Updates(user)
	if result.Error != nil {
		if dberr.IsDuplicate(result.Error) {
			return model.ErrUserExists
		}
		r.logger.Errorw("Update database error", "id", user.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}

	r.logger.Infow("Update completed", "id", user.ID)
	return nil
}

// SetPassword stores the first password hash and activates the account.
// The conditional update makes a concurrent second attempt fail instead of overwriting.
func (r *repository) SetPassword(ctx context.Context, id uint, hash string) error {
	r.logger.Debugw("SetPassword called", "id", id)

	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND (password_hash IS NULL OR password_hash = '')", id).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"is_active":     true,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		r.logger.Errorw("SetPassword database error", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrPasswordAlreadySet
	}

	r.logger.Infow("SetPassword completed", "id", id)
	return nil
}

// Delete removes a user. Tasks and todos are deleted explicitly; teams,
// memberships and conversations go through foreign key cascades.
func (r *repository) Delete(ctx context.Context, id uint) error {
	r.logger.Infow("Delete called", "id", id)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"todos", "tasks"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE created_by_id = ?", id).Error; err != nil {
				r.logger.Errorw("Delete failed to remove owned rows", "id", id, "table", table, "error", err)
				return err
			}
		}

		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			r.logger.Errorw("Delete database error", "id", id, "error", result.Error)
			return result.Error
		}
		if result.RowsAffected == 0 {
			return model.ErrUserNotFound
		}
		return nil
	})
}
