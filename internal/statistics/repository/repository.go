// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTaskStatistics counts the user's tasks per status.
	GetTaskStatistics(ctx context.Context, userID uint) (*model.TaskStatistics, error)

	// CountTeams counts teams the user created or belongs to.
	CountTeams(ctx context.Context, userID uint) (int, error)

	// CountUnreadMessages counts unread messages sent to the user.
	CountUnreadMessages(ctx context.Context, userID uint) (int, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetTaskStatistics counts the user's tasks per status.
func (r *repository) GetTaskStatistics(ctx context.Context, userID uint) (*model.TaskStatistics, error) {
	r.logger.Debugw("GetTaskStatistics called", "user", userID)

	var result struct {
		Total      int64 `gorm:"column:total"`
		Pending    int64 `gorm:"column:pending"`
		InProgress int64 `gorm:"column:in_progress"`
		Completed  int64 `gorm:"column:completed"`
	}

	err := r.db.WithContext(ctx).
		Table("tasks").
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = 'PENDING' THEN 1 ELSE 0 END), 0) as pending,
			COALESCE(SUM(CASE WHEN status = 'IN_PROGRESS' THEN 1 ELSE 0 END), 0) as in_progress,
			COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN 1 ELSE 0 END), 0) as completed
		`).
		Where("created_by_id = ?", userID).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetTaskStatistics database error", "error", err)
		return nil, err
	}

	return &model.TaskStatistics{
		Total:      int(result.Total),
		Pending:    int(result.Pending),
		InProgress: int(result.InProgress),
		Completed:  int(result.Completed),
	}, nil
}

// CountTeams counts teams the user created or belongs to.
func (r *repository) CountTeams(ctx context.Context, userID uint) (int, error) {
	memberOf := r.db.Table("team_members").Select("team_id").Where("user_id = ?", userID)

	var n int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("created_by_id = ? OR id IN (?)", userID, memberOf).
		Count(&n).Error

	if err != nil {
		r.logger.Errorw("CountTeams database error", "error", err)
		return 0, err
	}
	return int(n), nil
}

// CountUnreadMessages counts unread messages sent to the user.
func (r *repository) CountUnreadMessages(ctx context.Context, userID uint) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("messages").
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("(conversations.user1_id = ? OR conversations.user2_id = ?)", userID, userID).
		Where("messages.sender_id <> ? AND messages.is_read = ?", userID, false).
		Count(&n).Error

	if err != nil {
		r.logger.Errorw("CountUnreadMessages database error", "error", err)
		return 0, err
	}
	return int(n), nil
}
