package model

import "time"

// SendMessageRequest carries the text of a new message.
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateConversationRequest opens (or reuses) the conversation with another user.
type CreateConversationRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// CreateMessageRequest posts into an existing conversation through the flat /messages surface.
type CreateMessageRequest struct {
	Conversation uint   `json:"conversation" binding:"required"`
	Text         string `json:"text"         binding:"required"`
}

// MessageResponse represents a message in API responses.
type MessageResponse struct {
	ID           uint      `json:"id"`
	Conversation uint      `json:"conversation"`
	Sender       uint      `json:"sender"`
	SenderUserID string    `json:"sender_user_id"`
	Text         string    `json:"text"`
	IsRead       bool      `json:"is_read"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewMessageResponse builds the API representation of a message; Sender should be preloaded.
func NewMessageResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		Conversation: m.ConversationID,
		Sender:       m.SenderID,
		SenderUserID: m.Sender.UserID,
		Text:         m.Text,
		IsRead:       m.IsRead,
		Timestamp:    m.Timestamp,
	}
}

// NewMessageResponses maps a slice of messages, never returning nil.
func NewMessageResponses(msgs []Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, NewMessageResponse(&msgs[i]))
	}
	return out
}

// Participant is a user as shown inside a conversation.
type Participant struct {
	ID     uint   `json:"id"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// ConversationResponse represents a conversation in API responses.
type ConversationResponse struct {
	ID        uint        `json:"id"`
	User1     Participant `json:"user1"`
	User2     Participant `json:"user2"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewConversationResponse builds the API representation of a conversation; users should be preloaded.
func NewConversationResponse(c *Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        c.ID,
		User1:     Participant{ID: c.User1ID, UserID: c.User1.UserID, Email: c.User1.Email},
		User2:     Participant{ID: c.User2ID, UserID: c.User2.UserID, Email: c.User2.Email},
		CreatedAt: c.CreatedAt,
	}
}
