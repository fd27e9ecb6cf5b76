// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/statistics/model"
	"github.com/festy23/teamdesk/internal/statistics/repository"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// TodoCounter counts a user's unfinished todos.
type TodoCounter interface {
	CountPending(ctx context.Context, ownerID uint) (int64, error)
}

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetSummary returns the caller's dashboard counters.
	GetSummary(ctx context.Context, caller *userModel.User) (*model.SummaryResponse, error)
}

type service struct {
	repo   repository.Repository
	todos  TodoCounter
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, todos TodoCounter, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		todos:  todos,
		logger: logger,
	}
}

// GetSummary returns the caller's dashboard counters.
func (s *service) GetSummary(ctx context.Context, caller *userModel.User) (*model.SummaryResponse, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	s.logger.Debugw("GetSummary called", "user", caller.ID)

	tasks, err := s.repo.GetTaskStatistics(ctx, caller.ID)
	if err != nil {
		s.logger.Errorw("GetSummary failed", "stage", "tasks", "error", err)
		return nil, err
	}
	todos, err := s.todos.CountPending(ctx, caller.ID)
	if err != nil {
		s.logger.Errorw("GetSummary failed", "stage", "todos", "error", err)
		return nil, err
	}
	teams, err := s.repo.CountTeams(ctx, caller.ID)
	if err != nil {
		s.logger.Errorw("GetSummary failed", "stage", "teams", "error", err)
		return nil, err
	}
	unread, err := s.repo.CountUnreadMessages(ctx, caller.ID)
	if err != nil {
		s.logger.Errorw("GetSummary failed", "stage", "messages", "error", err)
		return nil, err
	}

	return &model.SummaryResponse{
		Statistics: model.Summary{
			Tasks:          *tasks,
			PendingTodos:   int(todos),
			Teams:          teams,
			UnreadMessages: unread,
		},
	}, nil
}
