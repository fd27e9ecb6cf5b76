// Package access holds the authorization predicates used by services.
// Every predicate takes the caller explicitly; a nil caller is always denied.
package access

import (
	"context"
	"errors"

	teamModel "github.com/festy23/teamdesk/internal/team/model"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// ErrForbidden indicates that the caller lacks the required role or ownership.
var ErrForbidden = errors.New("you do not have permission to perform this action")

// TeamFinder loads a team by primary key.
type TeamFinder interface {
	GetByID(ctx context.Context, id uint) (*teamModel.Team, error)
}

// IsAdmin reports whether the caller is an administrator.
func IsAdmin(caller *userModel.User) bool {
	return caller != nil && caller.IsAdmin
}

// IsTeamLead reports whether the caller is a team lead.
func IsTeamLead(caller *userModel.User) bool {
	return caller != nil && caller.IsTeamLead
}

// IsAdminOrTeamLead reports whether the caller holds either elevated role.
func IsAdminOrTeamLead(caller *userModel.User) bool {
	return IsAdmin(caller) || IsTeamLead(caller)
}

// IsTeamCreator reports whether the caller created the team.
func IsTeamCreator(caller *userModel.User, team *teamModel.Team) bool {
	return caller != nil && team != nil && team.CreatedByID == caller.ID
}

// CanCreateTaskForTeam reports whether the caller created the team.
// A missing team or a failed lookup denies.
func CanCreateTaskForTeam(ctx context.Context, finder TeamFinder, caller *userModel.User, teamID uint) bool {
	if caller == nil || finder == nil {
		return false
	}
	team, err := finder.GetByID(ctx, teamID)
	if err != nil {
		return false
	}
	return IsTeamCreator(caller, team)
}
