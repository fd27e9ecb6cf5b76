// Package model provides domain models and DTOs for task module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// DateLayout is the wire format of task dates.
const DateLayout = "2006-01-02"

// Priority of a task.
type Priority string

// Task priorities.
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status of a task.
type Status string

// Task statuses.
const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a work item owned by its creator.
// A task with a ParentTaskID is a subtask; subtasks never have subtasks of their own.
type Task struct {
	ID                 uint      `gorm:"primaryKey;column:id"`
	Title              string    `gorm:"column:title;type:varchar(255);not null"`
	Description        string    `gorm:"column:description;type:text;not null;default:''"`
	CreatedByID        uint      `gorm:"column:created_by_id;not null;index:idx_tasks_created_by"`
	ParentTaskID       *uint     `gorm:"column:parent_task_id;index:idx_tasks_parent"`
	EstimatedStartDate time.Time `gorm:"column:estimated_start_date;type:date;not null"`
	EstimatedEndDate   time.Time `gorm:"column:estimated_end_date;type:date;not null"`
	Priority           Priority  `gorm:"column:priority;type:varchar(10);not null;default:MEDIUM"`
	Status             Status    `gorm:"column:status;type:varchar(15);not null;default:PENDING"`
	Subtasks           []Task    `gorm:"foreignKey:ParentTaskID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time `gorm:"column:created_at;not null"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for GORM.
func (Task) TableName() string {
	return "tasks"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Task) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// IsTopLevel reports whether the task has no parent.
func (t *Task) IsTopLevel() bool {
	return t.ParentTaskID == nil
}
