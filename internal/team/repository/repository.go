// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	teamModel "github.com/festy23/teamdesk/internal/team/model"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts the team and sets its membership to members.
	Create(ctx context.Context, team *teamModel.Team, members []userModel.User) error

	// GetByID finds a team with its creator and members preloaded.
	GetByID(ctx context.Context, id uint) (*teamModel.Team, error)

	// ListForUser returns teams the user created or belongs to, newest first.
	ListForUser(ctx context.Context, userID uint) ([]teamModel.Team, error)

	// Update writes name and description.
	Update(ctx context.Context, team *teamModel.Team) error

	// ReplaceMembers sets the membership to exactly members.
	ReplaceMembers(ctx context.Context, team *teamModel.Team, members []userModel.User) error

	// Delete removes a team and its membership rows.
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func membersByID(db *gorm.DB) *gorm.DB {
	return db.Order("users.id ASC")
}

// Create inserts the team and sets its membership to members.
func (r *repository) Create(ctx context.Context, team *teamModel.Team, members []userModel.User) error {
	r.logger.Debugw("Create team called", "name", team.Name, "created_by", team.CreatedByID, "members", len(members))

	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(team).Error; err != nil {
		r.logger.Errorw("Create team database error", "name", team.Name, "error", err)
		return err
	}
	if err := db.Model(team).Association("Members").Replace(members); err != nil {
		r.logger.Errorw("Create team members database error", "id", team.ID, "error", err)
		return err
	}

	r.logger.Infow("Create team completed", "id", team.ID, "name", team.Name)
	return nil
}

// GetByID finds a team with its creator and members preloaded.
func (r *repository) GetByID(ctx context.Context, id uint) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("Members", membersByID).
		First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID team not found", "id", id)
			return nil, teamModel.ErrTeamNotFound
		}
		r.logger.Errorw("GetByID team database error", "id", id, "error", err)
		return nil, err
	}
	return &team, nil
}

// ListForUser returns teams the user created or belongs to, newest first.
func (r *repository) ListForUser(ctx context.Context, userID uint) ([]teamModel.Team, error) {
	db := r.db.WithContext(ctx)
	memberOf := db.Table("team_members").Select("team_id").Where("user_id = ?", userID)

	var teams []teamModel.Team
	err := db.
		Preload("CreatedBy").
		Preload("Members", membersByID).
		Where("teams.created_by_id = ? OR teams.id IN (?)", userID, memberOf).
		Order("teams.created_at DESC, teams.id DESC").
		Find(&teams).Error
	if err != nil {
		r.logger.Errorw("ListForUser database error", "user", userID, "error", err)
		return nil, err
	}
	if teams == nil {
		return []teamModel.Team{}, nil
	}
	return teams, nil
}

// Update writes name and description.
func (r *repository) Update(ctx context.Context, team *teamModel.Team) error {
	result := r.db.WithContext(ctx).
		Model(team).
		Select("name", "description", "updated_at").
		Omit(clause.Associations).
		Updates(team)
	if result.Error != nil {
		r.logger.Errorw("Update team database error", "id", team.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

// ReplaceMembers sets the membership to exactly members.
func (r *repository) ReplaceMembers(ctx context.Context, team *teamModel.Team, members []userModel.User) error {
	assoc := r.db.WithContext(ctx).Model(team).Association("Members")
	var err error
	if len(members) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(members)
	}
	if err != nil {
		r.logger.Errorw("ReplaceMembers database error", "id", team.ID, "error", err)
		return err
	}
	team.Members = members
	return nil
}

// Delete removes a team and its membership rows.
func (r *repository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	team := &teamModel.Team{ID: id}
	if err := db.Model(team).Association("Members").Clear(); err != nil {
		r.logger.Errorw("Delete team members database error", "id", id, "error", err)
		return err
	}

	result := db.Delete(team)
	if result.Error != nil {
		r.logger.Errorw("Delete team database error", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}

	r.logger.Infow("Delete team completed", "id", id)
	return nil
}
