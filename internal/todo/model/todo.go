// Package model provides domain models and DTOs for todo module.
package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// DateLayout is the wire format of todo dates.
const DateLayout = "2006-01-02"

var (
	// ErrTodoNotFound indicates that the todo does not exist or is not owned by the caller.
	ErrTodoNotFound = errors.New("todo not found")
	// ErrInvalidDate indicates a date that is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Todo is a dated personal item.
type Todo struct {
	ID          uint      `gorm:"primaryKey;column:id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Date        time.Time `gorm:"column:date;type:date;not null;index:idx_todos_owner_date,priority:2"`
	IsDone      bool      `gorm:"column:is_done;not null;default:false"`
	CreatedByID uint      `gorm:"column:created_by_id;not null;index:idx_todos_owner_date,priority:1"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for GORM.
func (Todo) TableName() string {
	return "todos"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Todo) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// CreateTodoRequest creates a todo; new todos are never done.
type CreateTodoRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Date  string `json:"date"  binding:"required,datetime=2006-01-02"`
}

// StatusResponse reports the state a todo was moved to.
type StatusResponse struct {
	Status string `json:"status"`
}

// TodoResponse represents a todo in API responses.
type TodoResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	IsDone    bool      `json:"is_done"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTodoResponse builds the API representation of a todo.
func NewTodoResponse(t *Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Date:      t.Date.Format(DateLayout),
		IsDone:    t.IsDone,
		CreatedBy: t.CreatedByID,
		CreatedAt: t.CreatedAt,
	}
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
