// Package service provides business logic layer for todo module.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/todo/model"
	"github.com/festy23/teamdesk/internal/todo/repository"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// Service defines the interface for todo business logic operations.
type Service interface {
	// CreateTodo adds an unfinished todo for the caller.
	CreateTodo(ctx context.Context, caller *userModel.User, req *model.CreateTodoRequest) (*model.Todo, error)

	// ListTodos returns the caller's unfinished todos, optionally for one date (YYYY-MM-DD).
	ListTodos(ctx context.Context, caller *userModel.User, date string) ([]model.Todo, error)

	// CompleteTodo marks an owned todo as done.
	CompleteTodo(ctx context.Context, caller *userModel.User, id uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new todo service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateTodo(ctx context.Context, caller *userModel.User, req *model.CreateTodoRequest) (*model.Todo, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	todo := &model.Todo{
		Title:       strings.TrimSpace(req.Title),
		Date:        date,
		CreatedByID: caller.ID,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	s.logger.Debugw("CreateTodo completed", "id", todo.ID, "owner", caller.ID)
	return todo, nil
}

func (s *service) ListTodos(ctx context.Context, caller *userModel.User, date string) ([]model.Todo, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}

	var day *time.Time
	if date != "" {
		d, err := model.ParseDate(date)
		if err != nil {
			return nil, err
		}
		day = &d
	}
	return s.repo.ListPending(ctx, caller.ID, day)
}

func (s *service) CompleteTodo(ctx context.Context, caller *userModel.User, id uint) error {
	if caller == nil {
		return access.ErrForbidden
	}
	if err := s.repo.MarkDone(ctx, caller.ID, id); err != nil {
		return err
	}
	s.logger.Debugw("CompleteTodo completed", "id", id, "owner", caller.ID)
	return nil
}
