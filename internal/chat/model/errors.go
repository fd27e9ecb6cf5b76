package model

import "errors"

var (
	// ErrConversationNotFound indicates that the conversation does not exist.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrMessageNotFound indicates that the message does not exist.
	ErrMessageNotFound = errors.New("message not found")
	// ErrSelfConversation indicates an attempt to talk to oneself.
	ErrSelfConversation = errors.New("cannot start a conversation with yourself")
	// ErrNotParticipant indicates that the caller is not part of the conversation.
	ErrNotParticipant = errors.New("not a participant of this conversation")
	// ErrEmptyMessage indicates a message without text.
	ErrEmptyMessage = errors.New("message text is required")
)
