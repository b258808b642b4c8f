package store

import (
	"time"

	"chaicraft_back_end/internal/models"

	"github.com/gocql/gocql"
)

func (s *Store) CreateMessage(m *models.Message) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}

	m.ID = gocql.TimeUUID()
	m.CreatedAt = time.Now()

	return session.Query(`INSERT INTO ks_users.messages (message_id, name, email, content, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Content, m.CreatedAt).Exec()
}

// =============================================
// CHAT CONVERSATIONS
// =============================================

func (s *Store) CreateConversation(c *models.Conversation) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}

	c.ID = gocql.TimeUUID()
	c.CreatedAt = time.Now()

	return session.Query(`INSERT INTO ks_users.conversations (conversation_id, user_id, title, created_at)
		VALUES (?, ?, ?, ?)`,
		c.ID, c.UserID, c.Title, c.CreatedAt).Exec()
}

func (s *Store) GetConversation(id gocql.UUID) (*models.Conversation, error) {
	session, err := s.db.UsersSession()
	if err != nil {
		return nil, err
	}

	var c models.Conversation
	if err := session.Query(`SELECT conversation_id, user_id, title, created_at
		FROM ks_users.conversations WHERE conversation_id = ?`, id).Scan(
		&c.ID, &c.UserID, &c.Title, &c.CreatedAt); err != nil {
		return nil, notFound(err)
	}

	messages, err := s.GetChatMessages(id)
	if err != nil {
		return nil, err
	}
	c.Messages = messages
	return &c, nil
}

func (s *Store) AppendChatMessage(m *models.ChatMessage) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}

	m.ID = gocql.TimeUUID()
	m.CreatedAt = time.Now()

	return session.Query(`INSERT INTO ks_users.chat_messages (conversation_id, created_at, chat_message_id, role, content)
		VALUES (?, ?, ?, ?, ?)`,
		m.ConversationID, m.CreatedAt, m.ID, m.Role, m.Content).Exec()
}

// GetChatMessages returns the thread oldest first (clustering order).
func (s *Store) GetChatMessages(conversationID gocql.UUID) ([]models.ChatMessage, error) {
	session, err := s.db.UsersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT conversation_id, created_at, chat_message_id, role, content
		FROM ks_users.chat_messages WHERE conversation_id = ?`, conversationID).Iter()

	var messages []models.ChatMessage
	var m models.ChatMessage
	for iter.Scan(&m.ConversationID, &m.CreatedAt, &m.ID, &m.Role, &m.Content) {
		messages = append(messages, m)
		m = models.ChatMessage{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return messages, nil
}
