// Package repository provides data access layer for task module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/teamdesk/internal/task/model"
)

// Repository defines the interface for task data access operations.
// Every lookup is scoped to the owning user.
type Repository interface {
	// Create inserts a top-level task.
	Create(ctx context.Context, task *model.Task) error

	// CreateSubtask attaches sub to the owner's top-level task parentID.
	CreateSubtask(ctx context.Context, ownerID, parentID uint, sub *model.Task) error

	// Get returns an owned task with its subtasks.
	Get(ctx context.Context, ownerID, id uint) (*model.Task, error)

	// GetSubtask returns the subtask id of parentID, or ErrTaskNotFound.
	GetSubtask(ctx context.Context, parentID, id uint) (*model.Task, error)

	// ListTopLevel returns the owner's top-level tasks with subtasks, newest first.
	ListTopLevel(ctx context.Context, ownerID uint) ([]model.Task, error)

	// Update writes every editable column of task.
	Update(ctx context.Context, task *model.Task) error

	// Delete removes an owned task and its subtasks.
	Delete(ctx context.Context, ownerID, id uint) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new task repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

var editableColumns = []string{
	"title", "description", "estimated_start_date", "estimated_end_date",
	"priority", "status", "updated_at",
}

func subtasksByID(db *gorm.DB) *gorm.DB {
	return db.Order("tasks.id ASC")
}

// Create inserts a top-level task.
func (r *repository) Create(ctx context.Context, task *model.Task) error {
	task.ParentTaskID = nil
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		r.logger.Errorw("Create task database error", "owner", task.CreatedByID, "error", err)
		return err
	}
	r.logger.Debugw("Create task completed", "id", task.ID, "owner", task.CreatedByID)
	return nil
}

// CreateSubtask attaches sub to the owner's top-level task parentID. The parent
// check and the insert run on the same handle, so callers inside a transaction
// get an atomic depth check.
func (r *repository) CreateSubtask(ctx context.Context, ownerID, parentID uint, sub *model.Task) error {
	db := r.db.WithContext(ctx)

	var parent model.Task
	err := db.Select("id", "parent_task_id").
		Where("id = ? AND created_by_id = ?", parentID, ownerID).
		First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrTaskNotFound
		}
		r.logger.Errorw("CreateSubtask parent lookup error", "parent", parentID, "error", err)
		return err
	}
	if !parent.IsTopLevel() {
		r.logger.Debugw("CreateSubtask rejected nested parent", "parent", parentID)
		return model.ErrNestedSubtask
	}

	sub.ID = 0
	sub.CreatedByID = ownerID
	sub.ParentTaskID = &parent.ID
	if err := db.Omit(clause.Associations).Create(sub).Error; err != nil {
		r.logger.Errorw("CreateSubtask database error", "parent", parentID, "error", err)
		return err
	}
	return nil
}

// Get returns an owned task with its subtasks.
func (r *repository) Get(ctx context.Context, ownerID, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks", subtasksByID).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("Get task not found", "id", id, "owner", ownerID)
			return nil, model.ErrTaskNotFound
		}
		r.logger.Errorw("Get task database error", "id", id, "error", err)
		return nil, err
	}
	return &task, nil
}

// GetSubtask returns the subtask id of parentID, or ErrTaskNotFound.
func (r *repository) GetSubtask(ctx context.Context, parentID, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND parent_task_id = ?", id, parentID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTaskNotFound
		}
		r.logger.Errorw("GetSubtask database error", "id", id, "parent", parentID, "error", err)
		return nil, err
	}
	return &task, nil
}

// ListTopLevel returns the owner's top-level tasks with subtasks, newest first.
func (r *repository) ListTopLevel(ctx context.Context, ownerID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks", subtasksByID).
		Where("created_by_id = ? AND parent_task_id IS NULL", ownerID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error
	if err != nil {
		r.logger.Errorw("ListTopLevel database error", "owner", ownerID, "error", err)
		return nil, err
	}
	if tasks == nil {
		return []model.Task{}, nil
	}
	return tasks, nil
}

// Update writes every editable column of task.
func (r *repository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).
		Model(task).
		Select(editableColumns).
		Omit(clause.Associations).
		Updates(task)
	if result.Error != nil {
		r.logger.Errorw("Update task database error", "id", task.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTaskNotFound
	}
	return nil
}

// Delete removes an owned task and its subtasks.
func (r *repository) Delete(ctx context.Context, ownerID, id uint) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("parent_task_id = ? AND created_by_id = ?", id, ownerID).Delete(&model.Task{}).Error; err != nil {
		r.logger.Errorw("Delete subtasks database error", "id", id, "error", err)
		return err
	}

	result := db.Where("id = ? AND created_by_id = ?", id, ownerID).Delete(&model.Task{})
	if result.Error != nil {
		r.logger.Errorw("Delete task database error", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTaskNotFound
	}

	r.logger.Infow("Delete task completed", "id", id, "owner", ownerID)
	return nil
}
