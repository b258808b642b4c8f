package handlers

import (
	"log"
	"net/http"
	"time"

	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

func (a *API) GetProductReviews(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if _, err := a.Store.GetProduct(id); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load product"})
		return
	}

	reviews, err := a.Store.GetReviewsByProduct(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type reviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (a *API) CreateReview(c *gin.Context) {
	productID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if _, err := a.Store.GetProduct(productID); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load product"})
		return
	}

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	userName := ""
	if user, err := a.Store.GetUser(userID); err == nil {
		userName = user.Name
	}

	review := models.Review{
		ID:        gocql.TimeUUID(),
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := a.Store.CreateReview(&review); err != nil {
		log.Println("❌ Failed to create review:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to save review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}
