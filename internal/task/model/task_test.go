package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_TableName(t *testing.T) {
	assert.Equal(t, "tasks", Task{}.TableName())
}

func TestTask_BeforeUpdate(t *testing.T) {
	task := &Task{Title: "write docs", UpdatedAt: time.Now().Add(-time.Hour)}
	old := task.UpdatedAt

	require.NoError(t, task.BeforeUpdate(nil))
	assert.True(t, task.UpdatedAt.After(old))
}

func TestPriority_Valid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("URGENT").Valid())
	assert.False(t, Priority("").Valid())
	assert.False(t, Priority("low").Valid())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("DONE").Valid())
	assert.False(t, Status("").Valid())
}

func TestNewTaskResponse(t *testing.T) {
	parentID := uint(1)
	task := &Task{
		ID:                 1,
		Title:              "release",
		CreatedByID:        4,
		EstimatedStartDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EstimatedEndDate:   time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		Priority:           PriorityHigh,
		Status:             StatusPending,
		Subtasks: []Task{{
			ID:                 2,
			Title:              "tag",
			CreatedByID:        4,
			ParentTaskID:       &parentID,
			EstimatedStartDate: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			EstimatedEndDate:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
			Priority:           PriorityLow,
			Status:             StatusCompleted,
		}},
	}

	resp := NewTaskResponse(task)

	assert.True(t, task.IsTopLevel())
	assert.Nil(t, resp.ParentTask)
	assert.Equal(t, "2025-01-10", resp.EstimatedStartDate)
	assert.Equal(t, "2025-01-20", resp.EstimatedEndDate)
	assert.Equal(t, uint(4), resp.CreatedBy)
	require.Len(t, resp.Subtasks, 1)
	assert.Equal(t, "tag", resp.Subtasks[0].Title)
	require.NotNil(t, resp.Subtasks[0].ParentTask)
	assert.Equal(t, uint(1), *resp.Subtasks[0].ParentTask)
	assert.NotNil(t, resp.Subtasks[0].Subtasks)
	assert.Empty(t, resp.Subtasks[0].Subtasks)
}
