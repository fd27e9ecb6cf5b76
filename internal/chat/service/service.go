// Package service provides business logic layer for chat module.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/chat/model"
	"github.com/festy23/teamdesk/internal/chat/repository"
	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// UserFinder resolves the other participant of a conversation.
type UserFinder interface {
	GetByID(ctx context.Context, id uint) (*userModel.User, error)
}

// Service defines the interface for chat business logic operations.
type Service interface {
	// GetOrCreateConversation returns the caller's conversation with otherID,
	// creating it on first contact. created reports whether it is new.
	GetOrCreateConversation(ctx context.Context, caller *userModel.User, otherID uint) (conv *model.Conversation, created bool, err error)

	// ListConversations returns the conversations the caller takes part in.
	ListConversations(ctx context.Context, caller *userModel.User) ([]model.Conversation, error)

	// SendMessage appends a message to the conversation between caller and receiverID.
	SendMessage(ctx context.Context, caller *userModel.User, receiverID uint, text string) (*model.Message, error)

	// History returns every message exchanged with otherID, oldest first.
	History(ctx context.Context, caller *userModel.User, otherID uint) ([]model.Message, error)

	// ListMessages returns a conversation's messages; empty when the caller is not a participant.
	ListMessages(ctx context.Context, caller *userModel.User, conversationID uint) ([]model.Message, error)

	// PostMessage appends a message to a conversation the caller takes part in.
	PostMessage(ctx context.Context, caller *userModel.User, conversationID uint, text string) (*model.Message, error)

	// ListMyMessages returns messages across all of the caller's conversations.
	ListMyMessages(ctx context.Context, caller *userModel.User) ([]model.Message, error)

	// MarkRead marks a message received by the caller as read. A sender
	// marking their own message gets it back with is_read unchanged.
	MarkRead(ctx context.Context, caller *userModel.User, messageID uint) (*model.Message, error)
}

type service struct {
	repo   repository.Repository
	users  UserFinder
	logger *zap.SugaredLogger
}

// New creates a new chat service instance.
func New(repo repository.Repository, users UserFinder, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		users:  users,
		logger: logger,
	}
}

func (s *service) GetOrCreateConversation(ctx context.Context, caller *userModel.User, otherID uint) (*model.Conversation, bool, error) {
	if caller == nil {
		return nil, false, access.ErrForbidden
	}
	if caller.ID == otherID {
		return nil, false, model.ErrSelfConversation
	}
	if _, err := s.users.GetByID(ctx, otherID); err != nil {
		return nil, false, err
	}

	lo, hi := model.CanonicalPair(caller.ID, otherID)
	conv, created, err := s.repo.GetOrCreateConversation(ctx, lo, hi)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Infow("conversation opened", "id", conv.ID, "user1", lo, "user2", hi)
	}
	return conv, created, nil
}

func (s *service) ListConversations(ctx context.Context, caller *userModel.User) ([]model.Conversation, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	return s.repo.ListConversations(ctx, caller.ID)
}

func (s *service) SendMessage(ctx context.Context, caller *userModel.User, receiverID uint, text string) (*model.Message, error) {
	text, err := messageText(text)
	if err != nil {
		return nil, err
	}
	conv, _, err := s.GetOrCreateConversation(ctx, caller, receiverID)
	if err != nil {
		return nil, err
	}
	return s.appendMessage(ctx, caller, conv, text)
}

func (s *service) History(ctx context.Context, caller *userModel.User, otherID uint) ([]model.Message, error) {
	conv, _, err := s.GetOrCreateConversation(ctx, caller, otherID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, conv.ID)
}

func (s *service) ListMessages(ctx context.Context, caller *userModel.User, conversationID uint) ([]model.Message, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.Includes(caller.ID) {
		return []model.Message{}, nil
	}
	return s.repo.ListMessages(ctx, conv.ID)
}

func (s *service) PostMessage(ctx context.Context, caller *userModel.User, conversationID uint, text string) (*model.Message, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	text, err := messageText(text)
	if err != nil {
		return nil, err
	}
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.Includes(caller.ID) {
		s.logger.Debugw("PostMessage denied", "conversation", conversationID, "caller", caller.ID)
		return nil, model.ErrNotParticipant
	}
	return s.appendMessage(ctx, caller, conv, text)
}

func (s *service) ListMyMessages(ctx context.Context, caller *userModel.User) ([]model.Message, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	return s.repo.ListMessagesForUser(ctx, caller.ID)
}

// MarkRead sets is_read on a message the caller received. When the caller
// is the sender, or the message is already read, nothing is written and the
// message is returned as stored, so a sender never flips is_read on their
// own message. Callers outside the conversation get ErrNotParticipant.
func (s *service) MarkRead(ctx context.Context, caller *userModel.User, messageID uint) (*model.Message, error) {
	if caller == nil {
		return nil, access.ErrForbidden
	}
	msg, err := s.repo.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if !msg.Conversation.Includes(caller.ID) {
		return nil, model.ErrNotParticipant
	}
	if msg.IsRead || msg.SenderID == caller.ID {
		return msg, nil
	}

	if err := s.repo.MarkRead(ctx, msg.ID); err != nil {
		return nil, err
	}
	msg.IsRead = true
	return msg, nil
}

func (s *service) appendMessage(ctx context.Context, sender *userModel.User, conv *model.Conversation, text string) (*model.Message, error) {
	msg := &model.Message{
		ConversationID: conv.ID,
		SenderID:       sender.ID,
		Text:           text,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	msg.Sender = *sender

	s.logger.Debugw("message sent", "id", msg.ID, "conversation", conv.ID, "sender", sender.ID)
	return msg, nil
}

func messageText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", model.ErrEmptyMessage
	}
	return text, nil
}
