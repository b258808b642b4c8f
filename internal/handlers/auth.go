package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/store"
	"chaicraft_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

type registerInput struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (a *API) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration payload"})
		return
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	if _, err := a.Store.GetUserByUsername(username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create account"})
		return
	}

	user := models.User{
		ID:        gocql.TimeUUID(),
		Username:  username,
		Password:  hashed,
		Name:      strings.TrimSpace(input.Name),
		Phone:     input.Phone,
		Address:   input.Address,
		Role:      models.RoleCustomer,
		CreatedAt: time.Now(),
	}
	if err := a.Store.CreateUser(&user); err != nil {
		log.Println("❌ Failed to create user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create account"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to issue token"})
		return
	}

	log.Println("✅ New account registered:", username)
	c.JSON(http.StatusCreated, gin.H{"user": user.Public(), "token": token})
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *API) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := a.Store.GetUserByUsername(strings.ToLower(strings.TrimSpace(input.Username)))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !utils.VerifyPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public(), "token": token})
}

func (a *API) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, err := a.Store.GetUser(userID)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
