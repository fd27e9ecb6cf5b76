package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint
		lo, hi uint
	}{
		{name: "already ordered", a: 1, b: 2, lo: 1, hi: 2},
		{name: "reversed", a: 9, b: 3, lo: 3, hi: 9},
		{name: "equal", a: 4, b: 4, lo: 4, hi: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := CanonicalPair(tt.a, tt.b)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)

			lo2, hi2 := CanonicalPair(tt.b, tt.a)
			assert.Equal(t, lo, lo2)
			assert.Equal(t, hi, hi2)
		})
	}
}

func TestConversation_Participants(t *testing.T) {
	c := &Conversation{User1ID: 2, User2ID: 5}

	assert.True(t, c.Includes(2))
	assert.True(t, c.Includes(5))
	assert.False(t, c.Includes(3))
	assert.Equal(t, uint(5), c.Other(2))
	assert.Equal(t, uint(2), c.Other(5))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "conversations", Conversation{}.TableName())
	assert.Equal(t, "messages", Message{}.TableName())
}

func TestNewMessageResponses(t *testing.T) {
	assert.NotNil(t, NewMessageResponses(nil))
	assert.Empty(t, NewMessageResponses(nil))

	resp := NewMessageResponses([]Message{{ID: 1, ConversationID: 3, SenderID: 2, Text: "hi"}})
	assert.Len(t, resp, 1)
	assert.Equal(t, uint(3), resp[0].Conversation)
	assert.Equal(t, "hi", resp[0].Text)
}
