// Package repository provides data access layer for todo module.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/todo/model"
)

// Repository defines the interface for todo data access operations.
type Repository interface {
	// Create inserts a todo.
	Create(ctx context.Context, todo *model.Todo) error

	// ListPending returns the owner's unfinished todos ordered by date,
	// optionally restricted to one day.
	ListPending(ctx context.Context, ownerID uint, date *time.Time) ([]model.Todo, error)

	// MarkDone sets is_done on an owned todo.
	MarkDone(ctx context.Context, ownerID, id uint) error

	// CountPending returns how many unfinished todos the owner has.
	CountPending(ctx context.Context, ownerID uint) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new todo repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, todo *model.Todo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		r.logger.Errorw("Create todo database error", "owner", todo.CreatedByID, "error", err)
		return err
	}
	return nil
}

func (r *repository) ListPending(ctx context.Context, ownerID uint, date *time.Time) ([]model.Todo, error) {
	query := r.db.WithContext(ctx).
		Where("created_by_id = ? AND is_done = ?", ownerID, false)
	if date != nil {
		query = query.Where("date = ?", *date)
	}

	todos := []model.Todo{}
	if err := query.Order("date ASC, id ASC").Find(&todos).Error; err != nil {
		r.logger.Errorw("ListPending database error", "owner", ownerID, "error", err)
		return nil, err
	}
	return todos, nil
}

func (r *repository) MarkDone(ctx context.Context, ownerID, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.Todo{}).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"is_done":    true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Errorw("MarkDone database error", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}

func (r *repository) CountPending(ctx context.Context, ownerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Todo{}).
		Where("created_by_id = ? AND is_done = ?", ownerID, false).
		Count(&n).Error
	if err != nil {
		r.logger.Errorw("CountPending database error", "owner", ownerID, "error", err)
		return 0, err
	}
	return n, nil
}
