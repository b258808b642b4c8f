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

// GetPromo looks a promo up by code for cart validation on the frontend.
// The actual discount is still recomputed server-side at checkout.
func (a *API) GetPromo(c *gin.Context) {
	promo, err := a.Store.GetPromoByCode(c.Param("code"))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load promo code"})
		return
	}
	c.JSON(http.StatusOK, promo)
}

func (a *API) GetAllPromos(c *gin.Context) {
	promos, err := a.Store.GetAllPromos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load promo codes"})
		return
	}
	c.JSON(http.StatusOK, promos)
}

type promoInput struct {
	Code           string `json:"code" binding:"required"`
	Type           string `json:"type" binding:"required"`
	Value          int    `json:"value" binding:"required,min=1"`
	MinOrderAmount int    `json:"minOrderAmount"`
	IsActive       *bool  `json:"isActive"`
}

func (a *API) CreatePromo(c *gin.Context) {
	var input promoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promo payload"})
		return
	}
	if input.Type != models.PromoPercentage && input.Type != models.PromoFixed {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Promo type must be percentage or fixed"})
		return
	}
	if input.Type == models.PromoPercentage && input.Value > 100 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Percentage promos cannot exceed 100"})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if _, err := a.Store.GetPromoByCode(code); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Promo code already exists"})
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	promo := models.Promo{
		ID:             gocql.TimeUUID(),
		Code:           code,
		Type:           input.Type,
		Value:          input.Value,
		MinOrderAmount: input.MinOrderAmount,
		IsActive:       active,
	}
	if err := a.Store.CreatePromo(&promo); err != nil {
		log.Println("❌ Failed to create promo:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create promo code"})
		return
	}

	log.Println("✅ Promo created:", promo.Code)
	c.JSON(http.StatusCreated, promo)
}

type promoUpdateInput struct {
	IsActive       *bool `json:"isActive"`
	MinOrderAmount *int  `json:"minOrderAmount"`
}

func (a *API) UpdatePromo(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))

	var input promoUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil || (input.IsActive == nil && input.MinOrderAmount == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide isActive and/or minOrderAmount"})
		return
	}

	if _, err := a.Store.GetPromoByCode(code); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load promo code"})
		return
	}

	if err := a.Store.UpdatePromo(code, input.IsActive, input.MinOrderAmount); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update promo code"})
		return
	}

	promo, err := a.Store.GetPromoByCode(code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load promo code"})
		return
	}
	c.JSON(http.StatusOK, promo)
}

func (a *API) DeletePromo(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))

	if _, err := a.Store.GetPromoByCode(code); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load promo code"})
		return
	}

	if err := a.Store.DeletePromo(code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to delete promo code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promo code deleted"})
}
