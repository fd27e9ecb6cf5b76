// Package service provides business logic layer for team module.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/access"
	teamModel "github.com/festy23/teamdesk/internal/team/model"
	"github.com/festy23/teamdesk/internal/team/repository"
	userModel "github.com/festy23/teamdesk/internal/user/model"
	userRepository "github.com/festy23/teamdesk/internal/user/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a team owned by the caller. Admin or team lead only.
	CreateTeam(ctx context.Context, caller *userModel.User, req *teamModel.CreateTeamRequest) (*teamModel.Team, error)

	// UpdateTeam replaces a team's fields. Creator only.
	UpdateTeam(ctx context.Context, caller *userModel.User, id uint, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error)

	// DeleteTeam removes a team. Creator only.
	DeleteTeam(ctx context.Context, caller *userModel.User, id uint) error

	// ListTeams returns teams the caller created or belongs to.
	ListTeams(ctx context.Context, caller *userModel.User) ([]teamModel.Team, error)

	// GetTeam returns a team visible to the caller.
	GetTeam(ctx context.Context, caller *userModel.User, id uint) (*teamModel.Team, error)
}

type service struct {
	repo   repository.Repository
	users  userRepository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, users userRepository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		users:  users,
		db:     db,
		logger: logger,
	}
}

// CreateTeam creates a team owned by the caller in a transaction.
// The caller is always a member; unknown member handles abort before any write.
func (s *service) CreateTeam(ctx context.Context, caller *userModel.User, req *teamModel.CreateTeamRequest) (*teamModel.Team, error) {
	if !access.IsAdminOrTeamLead(caller) {
		s.logger.Debugw("CreateTeam denied", "caller", callerID(caller))
		return nil, access.ErrForbidden
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	members, err := s.resolveMembers(ctx, s.users, req.Members)
	if err != nil {
		return nil, err
	}
	if !containsUser(members, caller.ID) {
		members = append(members, *caller)
	}

	team := &teamModel.Team{
		Name:        name,
		Description: req.Description,
		CreatedByID: caller.ID,
	}

	var result *teamModel.Team
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		if err := txRepo.Create(ctx, team, members); err != nil {
			return err
		}

		created, err := txRepo.GetByID(ctx, team.ID)
		if err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("CreateTeam completed", "id", result.ID, "name", result.Name, "members", len(result.Members))
	return result, nil
}

// UpdateTeam replaces name and description. Members, when present, replace the
// membership exactly; the creator is not re-added.
func (s *service) UpdateTeam(ctx context.Context, caller *userModel.User, id uint, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	var result *teamModel.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		team, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !access.IsTeamCreator(caller, team) {
			s.logger.Debugw("UpdateTeam denied", "id", id, "caller", callerID(caller))
			return access.ErrForbidden
		}

		team.Name = name
		team.Description = req.Description
		if err := txRepo.Update(ctx, team); err != nil {
			return err
		}

		if req.Members != nil {
			members, err := s.resolveMembers(ctx, userRepository.New(tx, s.logger), req.Members)
			if err != nil {
				return err
			}
			if err := txRepo.ReplaceMembers(ctx, team, members); err != nil {
				return err
			}
		}

		updated, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("UpdateTeam completed", "id", id, "members", len(result.Members))
	return result, nil
}

// DeleteTeam removes a team. Creator only.
func (s *service) DeleteTeam(ctx context.Context, caller *userModel.User, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		team, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !access.IsTeamCreator(caller, team) {
			s.logger.Debugw("DeleteTeam denied", "id", id, "caller", callerID(caller))
			return access.ErrForbidden
		}
		return txRepo.Delete(ctx, id)
	})
}

// ListTeams returns teams the caller created or belongs to.
func (s *service) ListTeams(ctx context.Context, caller *userModel.User) ([]teamModel.Team, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	return s.repo.ListForUser(ctx, caller.ID)
}

// GetTeam returns a team visible to the caller. Teams the caller neither created
// nor belongs to are reported as not found.
func (s *service) GetTeam(ctx context.Context, caller *userModel.User, id uint) (*teamModel.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller == nil || (!access.IsTeamCreator(caller, team) && !team.HasMember(caller.ID)) {
		return nil, teamModel.ErrTeamNotFound
	}
	return team, nil
}

// resolveMembers maps user_id handles to users and reports every unknown handle.
func (s *service) resolveMembers(ctx context.Context, users userRepository.Repository, handles []string) ([]userModel.User, error) {
	unique := make([]string, 0, len(handles))
	seen := make(map[string]struct{}, len(handles))
	for _, h := range handles {
		h = strings.TrimSpace(h)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		unique = append(unique, h)
	}
	if len(unique) == 0 {
		return []userModel.User{}, nil
	}

	found, err := users.GetByUserIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(found) == len(unique) {
		return found, nil
	}

	known := make(map[string]struct{}, len(found))
	for _, u := range found {
		known[u.UserID] = struct{}{}
	}
	var missing []string
	for _, h := range unique {
		if _, ok := known[h]; !ok {
			missing = append(missing, h)
		}
	}
	s.logger.Debugw("unknown team members", "handles", missing)
	return nil, fmt.Errorf("%w: %s", teamModel.ErrUnknownMember, strings.Join(missing, ", "))
}

func containsUser(users []userModel.User, id uint) bool {
	for i := range users {
		if users[i].ID == id {
			return true
		}
	}
	return false
}

func callerID(caller *userModel.User) uint {
	if caller == nil {
		return 0
	}
	return caller.ID
}
