// Package model provides domain models and DTOs for team module.
package model

import "time"

// CreateTeamRequest represents the request to create a team.
// Members are user_id handles.
type CreateTeamRequest struct {
	Name        string   `json:"name"        binding:"required,max=100"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// UpdateTeamRequest replaces the team's fields. A nil Members list keeps the
// current membership; an empty list removes every member.
type UpdateTeamRequest struct {
	Name        string   `json:"name"        binding:"required,max=100"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// TeamResponse represents a team in API responses.
type TeamResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	Members     []string  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTeamResponse builds the API representation of a team with preloaded associations.
func NewTeamResponse(t *Team) TeamResponse {
	members := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, m.UserID)
	}
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedBy:   t.CreatedBy.UserID,
		Members:     members,
		CreatedAt:   t.CreatedAt,
	}
}
