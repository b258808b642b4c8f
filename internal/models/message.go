package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Message is a contact-form submission.
type Message struct {
	ID        gocql.UUID `json:"id" db:"message_id"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email" db:"email"`
	Content   string     `json:"content" db:"content"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// Conversation is a chat-assistant thread owned by a user.
type Conversation struct {
	ID        gocql.UUID `json:"id" db:"conversation_id"`
	UserID    gocql.UUID `json:"userId" db:"user_id"`
	Title     string     `json:"title" db:"title"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`

	Messages []ChatMessage `json:"messages,omitempty"`
}

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	ID             gocql.UUID `json:"id" db:"chat_message_id"`
	ConversationID gocql.UUID `json:"conversationId" db:"conversation_id"`
	Role           string     `json:"role" db:"role"`
	Content        string     `json:"content" db:"content"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}
