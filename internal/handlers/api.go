// Package handlers implements the JSON HTTP API. All dependencies arrive via
// the API struct built in main; handlers hold no package state.
package handlers

import (
	"net/http"

	"chaicraft_back_end/internal/events"
	"chaicraft_back_end/internal/services"
	"chaicraft_back_end/internal/store"
	"chaicraft_back_end/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
)

type API struct {
	Store    *store.Store
	Redis    *redis.Client
	Search   *services.Search
	Media    *services.Media
	Notifier services.Notifier
	LLM      *services.LLM
	Hub      *ws.Hub
	Events   *events.Producer
}

func New(st *store.Store, rdb *redis.Client, search *services.Search, media *services.Media,
	notifier services.Notifier, llm *services.LLM, hub *ws.Hub, producer *events.Producer) *API {
	return &API{
		Store:    st,
		Redis:    rdb,
		Search:   search,
		Media:    media,
		Notifier: notifier,
		LLM:      llm,
		Hub:      hub,
		Events:   producer,
	}
}

// currentUserID parses the authenticated user id placed by the JWT middleware.
func currentUserID(c *gin.Context) (gocql.UUID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		return gocql.UUID{}, false
	}
	id, err := gocql.ParseUUID(raw)
	if err != nil {
		return gocql.UUID{}, false
	}
	return id, true
}

func isAdmin(c *gin.Context) bool {
	role, _ := c.Get("role")
	return role == "admin"
}

// uuidParam parses the :id path segment, replying 400 on garbage.
func uuidParam(c *gin.Context, name string) (gocql.UUID, bool) {
	id, err := gocql.ParseUUID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return gocql.UUID{}, false
	}
	return id, true
}
