package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/services"
	"chaicraft_back_end/internal/store"
	"chaicraft_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

type conversationInput struct {
	Title string `json:"title"`
}

func (a *API) CreateConversation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input conversationInput
	_ = c.ShouldBindJSON(&input)
	if input.Title == "" {
		input.Title = "New conversation"
	}

	conversation := models.Conversation{
		ID:        gocql.TimeUUID(),
		UserID:    userID,
		Title:     input.Title,
		CreatedAt: time.Now(),
	}
	if err := a.Store.CreateConversation(&conversation); err != nil {
		log.Println("❌ Failed to create conversation:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to start conversation"})
		return
	}

	c.JSON(http.StatusCreated, conversation)
}

// loadOwnedConversation fetches a conversation and enforces ownership. A
// stranger's conversation looks exactly like a missing one.
func (a *API) loadOwnedConversation(c *gin.Context) (*models.Conversation, bool) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return nil, false
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}

	conversation, err := a.Store.GetConversation(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load conversation"})
		return nil, false
	}
	if conversation.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return nil, false
	}
	return conversation, true
}

func (a *API) GetConversation(c *gin.Context) {
	conversation, ok := a.loadOwnedConversation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, conversation)
}

type chatInput struct {
	Content string `json:"content" binding:"required"`
}

// SendChatMessage appends the user's message, streams the assistant reply as
// SSE (data: {"content": ...} chunks, then data: {"done": true}) and persists
// the full reply once the stream ends.
func (a *API) SendChatMessage(c *gin.Context) {
	conversation, ok := a.loadOwnedConversation(c)
	if !ok {
		return
	}

	var input chatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is required"})
		return
	}

	userMessage := models.ChatMessage{
		ID:             gocql.TimeUUID(),
		ConversationID: conversation.ID,
		Role:           models.ChatRoleUser,
		Content:        input.Content,
		CreatedAt:      time.Now(),
	}
	if err := a.Store.AppendChatMessage(&userMessage); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to save message"})
		return
	}

	history, err := a.Store.GetChatMessages(conversation.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load conversation"})
		return
	}

	turns := []services.ChatTurn{{Role: "system", Content: a.assistantSystemPrompt()}}
	for _, m := range history {
		turns = append(turns, services.ChatTurn{Role: m.Role, Content: m.Content})
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	writeChunk := func(content string) {
		payload, _ := json.Marshal(gin.H{"content": content})
		fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
		c.Writer.Flush()
	}

	var reply string
	if a.LLM.Enabled() {
		reply, err = a.LLM.Stream(c.Request.Context(), turns, writeChunk)
		if err != nil {
			log.Println("⚠️ Assistant stream failed:", err)
		}
	}
	if reply == "" {
		reply = "Our chai assistant is taking a short break. Browse the catalog or write to us through the contact page and we will help you out."
		writeChunk(reply)
	}

	assistantMessage := models.ChatMessage{
		ID:             gocql.TimeUUID(),
		ConversationID: conversation.ID,
		Role:           models.ChatRoleAssistant,
		Content:        reply,
		CreatedAt:      time.Now(),
	}
	if err := a.Store.AppendChatMessage(&assistantMessage); err != nil {
		log.Println("❌ Failed to persist assistant reply:", err)
	}

	fmt.Fprint(c.Writer, "data: {\"done\": true}\n\n")
	c.Writer.Flush()
}

// assistantSystemPrompt grounds the assistant in the live catalog so it only
// recommends products we actually sell.
func (a *API) assistantSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are the Chai Craft shopping assistant. Help customers pick teas, explain brewing, and answer questions about their orders. Be warm and brief. Our current catalog:\n")

	products, err := a.Store.GetProducts()
	if err != nil {
		return sb.String()
	}
	for _, p := range products {
		sb.WriteString(fmt.Sprintf("- %s (%s): %s, %s\n", p.Name, p.Category, utils.Rupees(p.Price), p.Weight))
	}
	return sb.String()
}
