// Package model provides domain models and DTOs for chat module.
package model

import (
	"time"

	userModel "github.com/festy23/teamdesk/internal/user/model"
)

// Conversation is the single thread between two distinct users.
// User1ID is always the smaller user id, so a pair maps to exactly one row.
type Conversation struct {
	ID        uint           `gorm:"primaryKey;column:id"`
	User1ID   uint           `gorm:"column:user1_id;not null;uniqueIndex:idx_conversations_pair,priority:1"`
	User2ID   uint           `gorm:"column:user2_id;not null;uniqueIndex:idx_conversations_pair,priority:2;index:idx_conversations_user2"`
	User1     userModel.User `gorm:"foreignKey:User1ID;constraint:OnDelete:CASCADE"`
	User2     userModel.User `gorm:"foreignKey:User2ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for GORM.
func (Conversation) TableName() string {
	return "conversations"
}

// Includes reports whether the user takes part in the conversation.
func (c *Conversation) Includes(userID uint) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// Other returns the participant that is not userID.
func (c *Conversation) Other(userID uint) uint {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}

// CanonicalPair orders two user ids so that lo < hi.
func CanonicalPair(a, b uint) (lo, hi uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// Message is an append-only entry in a conversation; only IsRead ever changes.
type Message struct {
	ID             uint           `gorm:"primaryKey;column:id"`
	ConversationID uint           `gorm:"column:conversation_id;not null;index:idx_messages_conversation_ts,priority:1"`
	Conversation   Conversation   `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	SenderID       uint           `gorm:"column:sender_id;not null;index:idx_messages_sender"`
	Sender         userModel.User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Text           string         `gorm:"column:text;type:text;not null"`
	IsRead         bool           `gorm:"column:is_read;not null;default:false"`
	Timestamp      time.Time      `gorm:"column:timestamp;not null;index:idx_messages_conversation_ts,priority:2"`
}

// TableName specifies the table name for GORM.
func (Message) TableName() string {
	return "messages"
}
