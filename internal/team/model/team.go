package model

import (
	"time"

	"gorm.io/gorm"

	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// Team represents a named group of users created by a team lead or admin.
// Matches the teams table schema; members live in the team_members join table.
type Team struct {
	ID          uint             `gorm:"primaryKey;column:id"`
	Name        string           `gorm:"column:name;type:varchar(100);not null"`
	Description string           `gorm:"column:description;type:text;not null;default:''"`
	CreatedByID uint             `gorm:"column:created_by_id;not null;index:idx_teams_created_by"`
	CreatedBy   userModel.User   `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
	Members     []userModel.User `gorm:"many2many:team_members;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time        `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// HasMember reports whether the user with the given primary key belongs to the team.
func (t *Team) HasMember(userID uint) bool {
	for i := range t.Members {
		if t.Members[i].ID == userID {
			return true
		}
	}
	return false
}
