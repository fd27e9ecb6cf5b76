package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/database/testdb"
	"github.com/festy23/teamdesk/internal/todo/model"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_ListPending(t *testing.T) {
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	owner := testdb.SeedUser(t, db, "owner")
	other := testdb.SeedUser(t, db, "other")
	ctx := context.Background()

	for _, todo := range []*model.Todo{
		{Title: "later", Date: day(9), CreatedByID: owner.ID},
		{Title: "first", Date: day(4), CreatedByID: owner.ID},
		{Title: "second", Date: day(4), CreatedByID: owner.ID},
		{Title: "foreign", Date: day(4), CreatedByID: other.ID},
	} {
		require.NoError(t, repo.Create(ctx, todo))
	}
	done := &model.Todo{Title: "done", Date: day(4), CreatedByID: owner.ID}
	require.NoError(t, repo.Create(ctx, done))
	require.NoError(t, repo.MarkDone(ctx, owner.ID, done.ID))

	t.Run("all dates", func(t *testing.T) {
		todos, err := repo.ListPending(ctx, owner.ID, nil)
		require.NoError(t, err)
		require.Len(t, todos, 3)
		assert.Equal(t, "first", todos[0].Title)
		assert.Equal(t, "second", todos[1].Title)
		assert.Equal(t, "later", todos[2].Title)
	})

	t.Run("one date", func(t *testing.T) {
		d := day(9)
		todos, err := repo.ListPending(ctx, owner.ID, &d)
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.Equal(t, "later", todos[0].Title)
	})

	t.Run("empty", func(t *testing.T) {
		d := day(20)
		todos, err := repo.ListPending(ctx, owner.ID, &d)
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})
}

func TestRepository_MarkDone(t *testing.T) {
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	owner := testdb.SeedUser(t, db, "owner")
	other := testdb.SeedUser(t, db, "other")
	ctx := context.Background()

	todo := &model.Todo{Title: "call", Date: day(4), CreatedByID: owner.ID}
	require.NoError(t, repo.Create(ctx, todo))

	assert.ErrorIs(t, repo.MarkDone(ctx, other.ID, todo.ID), model.ErrTodoNotFound)
	assert.ErrorIs(t, repo.MarkDone(ctx, owner.ID, 999), model.ErrTodoNotFound)

	n, err := repo.CountPending(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.MarkDone(ctx, owner.ID, todo.ID))
	require.NoError(t, repo.MarkDone(ctx, owner.ID, todo.ID), "completing twice is harmless")

	n, err = repo.CountPending(ctx, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
