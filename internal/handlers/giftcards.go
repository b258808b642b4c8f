package handlers

import (
	"log"
	"net/http"
	"strings"

	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// GetGiftCard exposes the remaining balance for a card the customer holds.
func (a *API) GetGiftCard(c *gin.Context) {
	card, err := a.Store.GetGiftCardByCode(c.Param("code"))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gift card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load gift card"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (a *API) GetAllGiftCards(c *gin.Context) {
	cards, err := a.Store.GetAllGiftCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load gift cards"})
		return
	}
	c.JSON(http.StatusOK, cards)
}

type giftCardInput struct {
	Code     string `json:"code" binding:"required"`
	Balance  int    `json:"balance" binding:"required,min=1"`
	IsActive *bool  `json:"isActive"`
}

func (a *API) CreateGiftCard(c *gin.Context) {
	var input giftCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift card payload"})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if _, err := a.Store.GetGiftCardByCode(code); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Gift card already exists"})
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	card := models.GiftCard{
		ID:       gocql.TimeUUID(),
		Code:     code,
		Balance:  input.Balance,
		IsActive: active,
	}
	if err := a.Store.CreateGiftCard(&card); err != nil {
		log.Println("❌ Failed to create gift card:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create gift card"})
		return
	}

	log.Println("✅ Gift card created:", card.Code)
	c.JSON(http.StatusCreated, card)
}
