package model

import "time"

// TaskRequest creates or updates a top-level task together with its subtasks.
// Team is an optional authorization gate and is not stored.
type TaskRequest struct {
	Title              string           `json:"title"                binding:"required,max=255"`
	Description        string           `json:"description"`
	EstimatedStartDate string           `json:"estimated_start_date" binding:"required,datetime=2006-01-02"`
	EstimatedEndDate   string           `json:"estimated_end_date"   binding:"required,datetime=2006-01-02"`
	Priority           Priority         `json:"priority"             binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Status             Status           `json:"status"               binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Team               *uint            `json:"team"`
	Subtasks           []SubtaskRequest `json:"subtasks_data"        binding:"omitempty,dive"`
}

// SubtaskRequest describes one subtask. On update, an ID that matches an existing
// subtask of the parent updates it; any other entry creates a new subtask.
type SubtaskRequest struct {
	ID                 *uint    `json:"id"`
	Title              string   `json:"title"                binding:"required,max=255"`
	Description        string   `json:"description"`
	EstimatedStartDate string   `json:"estimated_start_date" binding:"required,datetime=2006-01-02"`
	EstimatedEndDate   string   `json:"estimated_end_date"   binding:"required,datetime=2006-01-02"`
	Priority           Priority `json:"priority"             binding:"required,oneof=LOW MEDIUM HIGH"`
	Status             Status   `json:"status"               binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID                 uint           `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	CreatedBy          uint           `json:"created_by"`
	ParentTask         *uint          `json:"parent_task"`
	EstimatedStartDate string         `json:"estimated_start_date"`
	EstimatedEndDate   string         `json:"estimated_end_date"`
	Priority           Priority       `json:"priority"`
	Status             Status         `json:"status"`
	Subtasks           []TaskResponse `json:"subtasks"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// NewTaskResponse builds the API representation of a task and its loaded subtasks.
func NewTaskResponse(t *Task) TaskResponse {
	subtasks := make([]TaskResponse, 0, len(t.Subtasks))
	for i := range t.Subtasks {
		subtasks = append(subtasks, NewTaskResponse(&t.Subtasks[i]))
	}
	return TaskResponse{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		CreatedBy:          t.CreatedByID,
		ParentTask:         t.ParentTaskID,
		EstimatedStartDate: t.EstimatedStartDate.Format(DateLayout),
		EstimatedEndDate:   t.EstimatedEndDate.Format(DateLayout),
		Priority:           t.Priority,
		Status:             t.Status,
		Subtasks:           subtasks,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// DetailResponse carries a human readable confirmation.
type DetailResponse struct {
	Detail string `json:"detail"`
}
