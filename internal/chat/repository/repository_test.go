package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/chat/model"
	"github.com/festy23/teamdesk/internal/database/testdb"
)

func TestRepository_GetOrCreateConversation(t *testing.T) {
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	alice := testdb.SeedUser(t, db, "alice")
	bob := testdb.SeedUser(t, db, "bob")
	ctx := context.Background()

	lo, hi := model.CanonicalPair(bob.ID, alice.ID)

	first, created, err := repo.GetOrCreateConversation(ctx, lo, hi)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", first.User1.UserID)
	assert.Equal(t, "bob", first.User2.UserID)

	second, created, err := repo.GetOrCreateConversation(ctx, lo, hi)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var n int64
	require.NoError(t, db.Model(&model.Conversation{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestRepository_Conversations(t *testing.T) {
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	alice := testdb.SeedUser(t, db, "alice")
	bob := testdb.SeedUser(t, db, "bob")
	carol := testdb.SeedUser(t, db, "carol")
	ctx := context.Background()

	ab, _, err := repo.GetOrCreateConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	bc, _, err := repo.GetOrCreateConversation(ctx, bob.ID, carol.ID)
	require.NoError(t, err)

	convs, err := repo.ListConversations(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, bc.ID, convs[0].ID, "newest first")
	assert.Equal(t, ab.ID, convs[1].ID)

	convs, err = repo.ListConversations(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)

	got, err := repo.GetConversation(ctx, ab.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.User2.UserID)

	_, err = repo.GetConversation(ctx, 999)
	assert.ErrorIs(t, err, model.ErrConversationNotFound)
}

func TestRepository_Messages(t *testing.T) {
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	alice := testdb.SeedUser(t, db, "alice")
	bob := testdb.SeedUser(t, db, "bob")
	carol := testdb.SeedUser(t, db, "carol")
	ctx := context.Background()

	ab, _, err := repo.GetOrCreateConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	bc, _, err := repo.GetOrCreateConversation(ctx, bob.ID, carol.ID)
	require.NoError(t, err)

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	late := &model.Message{ConversationID: ab.ID, SenderID: bob.ID, Text: "late", Timestamp: base.Add(time.Minute)}
	early := &model.Message{ConversationID: ab.ID, SenderID: alice.ID, Text: "early", Timestamp: base}
	tie := &model.Message{ConversationID: ab.ID, SenderID: alice.ID, Text: "tie", Timestamp: base.Add(time.Minute)}
	other := &model.Message{ConversationID: bc.ID, SenderID: carol.ID, Text: "other", Timestamp: base}
	for _, m := range []*model.Message{late, early, tie, other} {
		require.NoError(t, repo.CreateMessage(ctx, m))
	}

	t.Run("chronological with id tiebreak", func(t *testing.T) {
		msgs, err := repo.ListMessages(ctx, ab.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, "early", msgs[0].Text)
		assert.Equal(t, "late", msgs[1].Text)
		assert.Equal(t, "tie", msgs[2].Text)
		assert.Equal(t, "alice", msgs[0].Sender.UserID)
	})

	t.Run("scoped to participant", func(t *testing.T) {
		msgs, err := repo.ListMessagesForUser(ctx, alice.ID)
		require.NoError(t, err)
		assert.Len(t, msgs, 3)

		msgs, err = repo.ListMessagesForUser(ctx, bob.ID)
		require.NoError(t, err)
		assert.Len(t, msgs, 4)
	})

	t.Run("mark read", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(ctx, late.ID))

		got, err := repo.GetMessage(ctx, late.ID)
		require.NoError(t, err)
		assert.True(t, got.IsRead)
		assert.Equal(t, ab.ID, got.Conversation.ID)

		assert.ErrorIs(t, repo.MarkRead(ctx, 999), model.ErrMessageNotFound)
		_, err = repo.GetMessage(ctx, 999)
		assert.ErrorIs(t, err, model.ErrMessageNotFound)
	})
}
