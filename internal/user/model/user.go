package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Roles reported to clients after login.
const (
	RoleAdmin    = "ADMIN"
	RoleTeamLead = "TEAM_LEAD"
	RoleUser     = "USER"
)

// User represents an account in the system.
// Matches the users table schema.
type User struct {
	ID           uint      `gorm:"primaryKey;column:id"                                                  json:"id"`
	UserID       string    `gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:idx_users_user_id" json:"user_id"`
	Email        string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:idx_users_email"    json:"email"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false"                                json:"is_admin"`
	IsTeamLead   bool      `gorm:"column:is_teamlead;not null;default:false"                             json:"is_teamlead"`
	IsActive     bool      `gorm:"column:is_active;not null;default:false"                               json:"is_active"`
	IsStaff      bool      `gorm:"column:is_staff;not null;default:false"                                json:"is_staff"`
	PasswordHash *string   `gorm:"column:password_hash;type:varchar(255)"                                json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"                                            json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"                                            json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// HasUsablePassword reports whether a password has been set for the account.
func (u *User) HasUsablePassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Role returns the highest role held by the user.
func (u *User) Role() string {
	switch {
	case u.IsAdmin:
		return RoleAdmin
	case u.IsTeamLead:
		return RoleTeamLead
	default:
		return RoleUser
	}
}

// NormalizeEmail lowercases the domain part of an address and trims spaces.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
