// Package service provides business logic layer for task module.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/task/model"
	"github.com/festy23/teamdesk/internal/task/repository"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// Service defines the interface for task business logic operations.
type Service interface {
	// CreateTask creates a top-level task and its subtasks atomically.
	CreateTask(ctx context.Context, caller *userModel.User, req *model.TaskRequest) (*model.Task, error)

	// UpdateTask replaces a task's fields and upserts the listed subtasks.
	UpdateTask(ctx context.Context, caller *userModel.User, id uint, req *model.TaskRequest) (*model.Task, error)

	// AddSubtask attaches a new subtask to an owned top-level task.
	AddSubtask(ctx context.Context, caller *userModel.User, parentID uint, req *model.SubtaskRequest) (*model.Task, error)

	// ListTasks returns the caller's top-level tasks with subtasks.
	ListTasks(ctx context.Context, caller *userModel.User) ([]model.Task, error)

	// GetTask returns an owned task with its subtasks.
	GetTask(ctx context.Context, caller *userModel.User, id uint) (*model.Task, error)

	// DeleteTask removes an owned task and its subtasks.
	DeleteTask(ctx context.Context, caller *userModel.User, id uint) error
}

type service struct {
	repo   repository.Repository
	teams  access.TeamFinder
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new task service instance. teams resolves the optional team gate.
func New(repo repository.Repository, teams access.TeamFinder, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		teams:  teams,
		db:     db,
		logger: logger,
	}
}

type fields struct {
	title       string
	description string
	start       string
	end         string
	priority    model.Priority
	status      model.Status
}

// apply validates f and copies it onto t. Empty priority and status fall back
// to the column defaults.
func (f fields) apply(t *model.Task) error {
	title := strings.TrimSpace(f.title)
	if title == "" {
		return fmt.Errorf("%w: title is required", model.ErrInvalidTask)
	}
	if len(title) > 255 {
		return fmt.Errorf("%w: title is longer than 255 characters", model.ErrInvalidTask)
	}

	start, err := time.ParseInLocation(model.DateLayout, f.start, time.UTC)
	if err != nil {
		return fmt.Errorf("%w: estimated_start_date must be YYYY-MM-DD", model.ErrInvalidTask)
	}
	end, err := time.ParseInLocation(model.DateLayout, f.end, time.UTC)
	if err != nil {
		return fmt.Errorf("%w: estimated_end_date must be YYYY-MM-DD", model.ErrInvalidTask)
	}

	priority := f.priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", model.ErrInvalidTask, f.priority)
	}
	status := f.status
	if status == "" {
		status = model.StatusPending
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", model.ErrInvalidTask, f.status)
	}

	t.Title = title
	t.Description = f.description
	t.EstimatedStartDate = start
	t.EstimatedEndDate = end
	t.Priority = priority
	t.Status = status
	return nil
}

func taskFields(req *model.TaskRequest) fields {
	return fields{
		title:       req.Title,
		description: req.Description,
		start:       req.EstimatedStartDate,
		end:         req.EstimatedEndDate,
		priority:    req.Priority,
		status:      req.Status,
	}
}

func subtaskFields(req *model.SubtaskRequest) fields {
	return fields{
		title:       req.Title,
		description: req.Description,
		start:       req.EstimatedStartDate,
		end:         req.EstimatedEndDate,
		priority:    req.Priority,
		status:      req.Status,
	}
}

type plannedSubtask struct {
	id   *uint
	task *model.Task
}

// planSubtasks validates every subtask payload before anything is written.
func planSubtasks(reqs []model.SubtaskRequest) ([]plannedSubtask, error) {
	planned := make([]plannedSubtask, 0, len(reqs))
	for i := range reqs {
		if reqs[i].Priority == "" {
			return nil, fmt.Errorf("%w: subtasks_data[%d]: priority is required", model.ErrInvalidTask, i)
		}
		sub := &model.Task{}
		if err := subtaskFields(&reqs[i]).apply(sub); err != nil {
			return nil, fmt.Errorf("subtasks_data[%d]: %w", i, err)
		}
		planned = append(planned, plannedSubtask{id: reqs[i].ID, task: sub})
	}
	return planned, nil
}

// CreateTask creates a top-level task and its subtasks atomically. A supplied
// team id is an authorization gate only: the caller must have created that team.
func (s *service) CreateTask(ctx context.Context, caller *userModel.User, req *model.TaskRequest) (*model.Task, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}

	task := &model.Task{CreatedByID: caller.ID}
	if err := taskFields(req).apply(task); err != nil {
		return nil, err
	}
	subtasks, err := planSubtasks(req.Subtasks)
	if err != nil {
		return nil, err
	}

	if req.Team != nil && !access.CanCreateTaskForTeam(ctx, s.teams, caller, *req.Team) {
		s.logger.Debugw("CreateTask denied for team", "team", *req.Team, "caller", caller.ID)
		return nil, access.ErrForbidden
	}

	var result *model.Task
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		if err := txRepo.Create(ctx, task); err != nil {
			return err
		}
		for _, p := range subtasks {
			if err := txRepo.CreateSubtask(ctx, caller.ID, task.ID, p.task); err != nil {
				return err
			}
		}

		created, err := txRepo.Get(ctx, caller.ID, task.ID)
		if err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("CreateTask completed", "id", result.ID, "owner", caller.ID, "subtasks", len(result.Subtasks))
	return result, nil
}

// UpdateTask replaces a task's fields. A subtask entry whose id belongs to this
// task is updated in place; any other entry creates a new subtask. Subtasks that
// are not listed are left alone.
func (s *service) UpdateTask(ctx context.Context, caller *userModel.User, id uint, req *model.TaskRequest) (*model.Task, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}

	changes := taskFields(req)
	if err := changes.apply(&model.Task{}); err != nil {
		return nil, err
	}
	subtasks, err := planSubtasks(req.Subtasks)
	if err != nil {
		return nil, err
	}

	var result *model.Task
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		task, err := txRepo.Get(ctx, caller.ID, id)
		if err != nil {
			return err
		}
		if err := changes.apply(task); err != nil {
			return err
		}
		if err := txRepo.Update(ctx, task); err != nil {
			return err
		}

		for _, p := range subtasks {
			if err := s.upsertSubtask(ctx, txRepo, caller.ID, task, p); err != nil {
				return err
			}
		}

		updated, err := txRepo.Get(ctx, caller.ID, id)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("UpdateTask completed", "id", id, "owner", caller.ID, "subtasks", len(subtasks))
	return result, nil
}

func (s *service) upsertSubtask(ctx context.Context, repo repository.Repository, ownerID uint, parent *model.Task, p plannedSubtask) error {
	if p.id != nil {
		existing, err := repo.GetSubtask(ctx, parent.ID, *p.id)
		switch {
		case err == nil:
			p.task.ID = existing.ID
			p.task.CreatedByID = existing.CreatedByID
			p.task.ParentTaskID = existing.ParentTaskID
			return repo.Update(ctx, p.task)
		case !errors.Is(err, model.ErrTaskNotFound):
			return err
		}
		s.logger.Debugw("subtask id not found under parent, creating", "parent", parent.ID, "id", *p.id)
	}
	return repo.CreateSubtask(ctx, ownerID, parent.ID, p.task)
}

// AddSubtask attaches a new subtask to an owned top-level task. A missing,
// foreign or nested parent is reported as not found.
func (s *service) AddSubtask(ctx context.Context, caller *userModel.User, parentID uint, req *model.SubtaskRequest) (*model.Task, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}

	planned, err := planSubtasks([]model.SubtaskRequest{*req})
	if err != nil {
		return nil, err
	}
	sub := planned[0].task

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.New(tx, s.logger).CreateSubtask(ctx, caller.ID, parentID, sub)
	})
	if errors.Is(err, model.ErrNestedSubtask) {
		return nil, model.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	s.logger.Infow("AddSubtask completed", "id", sub.ID, "parent", parentID, "owner", caller.ID)
	return sub, nil
}

// ListTasks returns the caller's top-level tasks with subtasks.
func (s *service) ListTasks(ctx context.Context, caller *userModel.User) ([]model.Task, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	return s.repo.ListTopLevel(ctx, caller.ID)
}

// GetTask returns an owned task with its subtasks.
func (s *service) GetTask(ctx context.Context, caller *userModel.User, id uint) (*model.Task, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	return s.repo.Get(ctx, caller.ID, id)
}

// DeleteTask removes an owned task and its subtasks.
func (s *service) DeleteTask(ctx context.Context, caller *userModel.User, id uint) error {
	if caller == nil {
		return access.ErrForbidden
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.New(tx, s.logger).Delete(ctx, caller.ID, id)
	})
}
