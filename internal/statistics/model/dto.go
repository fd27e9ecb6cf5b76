// Package model provides data transfer objects for statistics module.
package model

// TaskStatistics counts the caller's tasks, subtasks included, per status.
type TaskStatistics struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// Summary is the per-user dashboard.
type Summary struct {
	Tasks          TaskStatistics `json:"tasks"`
	PendingTodos   int            `json:"pending_todos"`
	Teams          int            `json:"teams"`
	UnreadMessages int            `json:"unread_messages"`
}

// SummaryResponse represents response for the summary endpoint.
type SummaryResponse struct {
	Statistics Summary `json:"statistics"`
}
