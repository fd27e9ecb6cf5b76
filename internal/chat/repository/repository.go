// Package repository provides data access layer for chat module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/teamdesk/internal/chat/model"
	"github.com/festy23/teamdesk/internal/database/dberr"
)

// Repository defines the interface for chat data access operations.
type Repository interface {
	// GetOrCreateConversation returns the conversation of the canonical pair lo < hi,
	// inserting it when absent. created reports whether this call inserted the row.
	GetOrCreateConversation(ctx context.Context, lo, hi uint) (conv *model.Conversation, created bool, err error)

	// GetConversation returns a conversation with both users preloaded.
	GetConversation(ctx context.Context, id uint) (*model.Conversation, error)

	// ListConversations returns the user's conversations, newest first.
	ListConversations(ctx context.Context, userID uint) ([]model.Conversation, error)

	// CreateMessage appends a message.
	CreateMessage(ctx context.Context, msg *model.Message) error

	// ListMessages returns a conversation's messages in chronological order.
	ListMessages(ctx context.Context, conversationID uint) ([]model.Message, error)

	// ListMessagesForUser returns messages of every conversation the user takes part in.
	ListMessagesForUser(ctx context.Context, userID uint) ([]model.Message, error)

	// GetMessage returns a message with its conversation and sender preloaded.
	GetMessage(ctx context.Context, id uint) (*model.Message, error)

	// MarkRead sets is_read on a message.
	MarkRead(ctx context.Context, id uint) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new chat repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) GetOrCreateConversation(ctx context.Context, lo, hi uint) (*model.Conversation, bool, error) {
	conv := &model.Conversation{User1ID: lo, User2ID: hi}
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user1_id"}, {Name: "user2_id"}},
			DoNothing: true,
		}).
		Create(conv)
	if result.Error != nil {
		r.logger.Errorw("GetOrCreateConversation insert error", "user1", lo, "user2", hi, "error", result.Error)
		return nil, false, result.Error
	}
	created := result.RowsAffected > 0

	var stored model.Conversation
	err := r.withUsers(ctx).
		Where("user1_id = ? AND user2_id = ?", lo, hi).
		First(&stored).Error
	if err != nil {
		r.logger.Errorw("GetOrCreateConversation refetch error", "user1", lo, "user2", hi, "error", err)
		return nil, false, err
	}
	return &stored, created, nil
}

func (r *repository) GetConversation(ctx context.Context, id uint) (*model.Conversation, error) {
	var conv model.Conversation
	if err := r.withUsers(ctx).First(&conv, id).Error; err != nil {
		if dberr.IsNotFound(err) {
			return nil, model.ErrConversationNotFound
		}
		r.logger.Errorw("GetConversation database error", "id", id, "error", err)
		return nil, err
	}
	return &conv, nil
}

func (r *repository) ListConversations(ctx context.Context, userID uint) ([]model.Conversation, error) {
	convs := []model.Conversation{}
	err := r.withUsers(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&convs).Error
	if err != nil {
		r.logger.Errorw("ListConversations database error", "user", userID, "error", err)
		return nil, err
	}
	return convs, nil
}

func (r *repository) CreateMessage(ctx context.Context, msg *model.Message) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(msg).Error; err != nil {
		r.logger.Errorw("CreateMessage database error", "conversation", msg.ConversationID, "error", err)
		return err
	}
	return nil
}

func (r *repository) ListMessages(ctx context.Context, conversationID uint) ([]model.Message, error) {
	msgs := []model.Message{}
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("timestamp ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		r.logger.Errorw("ListMessages database error", "conversation", conversationID, "error", err)
		return nil, err
	}
	return msgs, nil
}

func (r *repository) ListMessagesForUser(ctx context.Context, userID uint) ([]model.Message, error) {
	mine := r.db.Model(&model.Conversation{}).
		Select("id").
		Where("user1_id = ? OR user2_id = ?", userID, userID)

	msgs := []model.Message{}
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("conversation_id IN (?)", mine).
		Order("timestamp ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		r.logger.Errorw("ListMessagesForUser database error", "user", userID, "error", err)
		return nil, err
	}
	return msgs, nil
}

func (r *repository) GetMessage(ctx context.Context, id uint) (*model.Message, error) {
	var msg model.Message
	err := r.db.WithContext(ctx).
		Preload("Conversation").
		Preload("Sender").
		First(&msg, id).Error
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, model.ErrMessageNotFound
		}
		r.logger.Errorw("GetMessage database error", "id", id, "error", err)
		return nil, err
	}
	return &msg, nil
}

func (r *repository) MarkRead(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		r.logger.Errorw("MarkRead database error", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrMessageNotFound
	}
	return nil
}

func (r *repository) withUsers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("User1").Preload("User2")
}
