package handlers

import (
	"log"
	"net/http"
	"time"

	"chaicraft_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

type messageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Content string `json:"content" binding:"required"`
}

// CreateMessage stores a contact form submission. No auth; anyone can write in.
func (a *API) CreateMessage(c *gin.Context) {
	var input messageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and message content are required"})
		return
	}

	message := models.Message{
		ID:        gocql.TimeUUID(),
		Name:      input.Name,
		Email:     input.Email,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}
	if err := a.Store.CreateMessage(&message); err != nil {
		log.Println("❌ Failed to store contact message:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks for reaching out, we will get back to you soon"})
}
