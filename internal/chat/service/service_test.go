package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/chat/model"
	"github.com/festy23/teamdesk/internal/chat/repository"
	"github.com/festy23/teamdesk/internal/database/testdb"
	userModel "github.com/festy23/teamdesk/internal/user/model"
	userRepository "github.com/festy23/teamdesk/internal/user/repository"
)

func setup(t *testing.T) (Service, *gorm.DB) {
	db := testdb.New(t)
	logger := zap.NewNop().Sugar()
	return New(repository.New(db, logger), userRepository.New(db, logger), logger), db
}

func countConversations(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.Conversation{}).Count(&n).Error)
	return n
}

func TestService_GetOrCreateConversation(t *testing.T) {
	t.Run("order independent", func(t *testing.T) {
		svc, db := setup(t)
		alice := testdb.SeedUser(t, db, "alice")
		bob := testdb.SeedUser(t, db, "bob")
		ctx := context.Background()

		fromBob, created, err := svc.GetOrCreateConversation(ctx, bob, alice.ID)
		require.NoError(t, err)
		assert.True(t, created)
		fromAlice, created, err := svc.GetOrCreateConversation(ctx, alice, bob.ID)
		require.NoError(t, err)
		assert.False(t, created)

		assert.Equal(t, fromBob.ID, fromAlice.ID)
		assert.Equal(t, alice.ID, fromAlice.User1ID)
		assert.Equal(t, bob.ID, fromAlice.User2ID)
		assert.Equal(t, int64(1), countConversations(t, db))
	})

	t.Run("self conversation", func(t *testing.T) {
		svc, db := setup(t)
		alice := testdb.SeedUser(t, db, "alice")

		_, _, err := svc.GetOrCreateConversation(context.Background(), alice, alice.ID)

		assert.ErrorIs(t, err, model.ErrSelfConversation)
		assert.Zero(t, countConversations(t, db))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, db := setup(t)
		alice := testdb.SeedUser(t, db, "alice")

		_, _, err := svc.GetOrCreateConversation(context.Background(), alice, 999)

		assert.ErrorIs(t, err, userModel.ErrUserNotFound)
	})
}

func TestService_SendAndHistory(t *testing.T) {
	svc, db := setup(t)
	alice := testdb.SeedUser(t, db, "alice")
	bob := testdb.SeedUser(t, db, "bob")
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, alice, bob.ID, "hi bob")
	require.NoError(t, err)
	reply, err := svc.SendMessage(ctx, bob, alice.ID, "hi alice")
	require.NoError(t, err)
	assert.Equal(t, "bob", reply.Sender.UserID)
	assert.False(t, reply.IsRead)

	_, err = svc.SendMessage(ctx, alice, bob.ID, "   ")
	assert.ErrorIs(t, err, model.ErrEmptyMessage)
	_, err = svc.SendMessage(ctx, alice, 999, "anyone?")
	assert.ErrorIs(t, err, userModel.ErrUserNotFound)

	for _, pov := range []struct {
		caller *userModel.User
		other  uint
	}{{alice, bob.ID}, {bob, alice.ID}} {
		msgs, err := svc.History(ctx, pov.caller, pov.other)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hi bob", msgs[0].Text)
		assert.Equal(t, "hi alice", msgs[1].Text)
	}
	assert.Equal(t, int64(1), countConversations(t, db))
}

func TestService_History_CreatesConversation(t *testing.T) {
	svc, db := setup(t)
	alice := testdb.SeedUser(t, db, "alice")
	bob := testdb.SeedUser(t, db, "bob")

	msgs, err := svc.History(context.Background(), alice, bob.ID)

	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
	assert.Equal(t, int64(1), countConversations(t, db))
}

func TestService_ConversationMessages(t *testing.T) {
	svc, db := setup(t)
	alice := testdb.SeedUser(t, db, "alice")
	bob := testdb.SeedUser(t, db, "bob")
	mallory := testdb.SeedUser(t, db, "mallory")
	ctx := context.Background()

	conv, _, err := svc.GetOrCreateConversation(ctx, alice, bob.ID)
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, bob, conv.ID, "ping")
	require.NoError(t, err)

	t.Run("participant sees messages", func(t *testing.T) {
		msgs, err := svc.ListMessages(ctx, alice, conv.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "ping", msgs[0].Text)
	})

	t.Run("outsider sees nothing", func(t *testing.T) {
		msgs, err := svc.ListMessages(ctx, mallory, conv.ID)
		require.NoError(t, err)
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)

		mine, err := svc.ListMyMessages(ctx, mallory)
		require.NoError(t, err)
		assert.Empty(t, mine)
	})

	t.Run("outsider cannot post", func(t *testing.T) {
		_, err := svc.PostMessage(ctx, mallory, conv.ID, "let me in")
		assert.ErrorIs(t, err, model.ErrNotParticipant)
	})

	t.Run("missing conversation", func(t *testing.T) {
		_, err := svc.ListMessages(ctx, alice, 999)
		assert.ErrorIs(t, err, model.ErrConversationNotFound)
		_, err = svc.PostMessage(ctx, alice, 999, "hello")
		assert.ErrorIs(t, err, model.ErrConversationNotFound)
	})

	t.Run("conversation list", func(t *testing.T) {
		convs, err := svc.ListConversations(ctx, bob)
		require.NoError(t, err)
		require.Len(t, convs, 1)
		assert.Equal(t, conv.ID, convs[0].ID)
	})
}

func TestService_MarkRead(t *testing.T) {
	svc, db := setup(t)
	alice := testdb.SeedUser(t, db, "alice")
	bob := testdb.SeedUser(t, db, "bob")
	mallory := testdb.SeedUser(t, db, "mallory")
	ctx := context.Background()

	msg, err := svc.SendMessage(ctx, alice, bob.ID, "read me")
	require.NoError(t, err)

	own, err := svc.MarkRead(ctx, alice, msg.ID)
	require.NoError(t, err)
	assert.False(t, own.IsRead, "sender cannot mark own message")
	var stored model.Message
	require.NoError(t, db.First(&stored, msg.ID).Error)
	assert.False(t, stored.IsRead, "sender call must not write is_read")

	_, err = svc.MarkRead(ctx, mallory, msg.ID)
	assert.ErrorIs(t, err, model.ErrNotParticipant)

	read, err := svc.MarkRead(ctx, bob, msg.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	again, err := svc.MarkRead(ctx, bob, msg.ID)
	require.NoError(t, err)
	assert.True(t, again.IsRead)

	bySender, err := svc.MarkRead(ctx, alice, msg.ID)
	require.NoError(t, err)
	assert.True(t, bySender.IsRead, "sender sees the receiver's read state")

	_, err = svc.MarkRead(ctx, bob, 999)
	assert.ErrorIs(t, err, model.ErrMessageNotFound)
}

func TestService_NoCaller(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, _, err := svc.GetOrCreateConversation(ctx, nil, 1)
	assert.ErrorIs(t, err, access.ErrForbidden)
	_, err = svc.ListConversations(ctx, nil)
	assert.ErrorIs(t, err, access.ErrForbidden)
	_, err = svc.SendMessage(ctx, nil, 1, "hi")
	assert.ErrorIs(t, err, access.ErrForbidden)
	_, err = svc.ListMyMessages(ctx, nil)
	assert.ErrorIs(t, err, access.ErrForbidden)
}
