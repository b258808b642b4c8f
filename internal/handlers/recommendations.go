package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// GetRecommendations asks the model to pick products for this customer based
// on their order history. When the model is unavailable or answers garbage we
// fall back to the best sellers; the customer always gets something.
func (a *API) GetRecommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	products, err := a.Store.GetProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load products"})
		return
	}

	if a.LLM.Enabled() {
		if picks := a.modelRecommendations(c, userID, products); len(picks) > 0 {
			c.JSON(http.StatusOK, picks)
			return
		}
	}

	c.JSON(http.StatusOK, bestSellers(products))
}

func (a *API) modelRecommendations(c *gin.Context, userID gocql.UUID, products []models.Product) []models.Product {
	var history strings.Builder
	orders, err := a.Store.GetOrdersByUser(userID)
	if err == nil {
		for _, o := range orders {
			for _, item := range o.Items {
				fmt.Fprintf(&history, "- %s x%d\n", item.ProductName, item.Quantity)
			}
		}
	}
	if history.Len() == 0 {
		history.WriteString("(no orders yet)\n")
	}

	var catalog strings.Builder
	for _, p := range products {
		fmt.Fprintf(&catalog, "- %s (%s): %s\n", p.Name, p.Category, p.Description)
	}

	prompt := fmt.Sprintf(
		"A customer of our tea shop has previously ordered:\n%s\nOur catalog:\n%s\nPick up to 4 products from the catalog this customer would enjoy next. Respond with ONLY a JSON array of exact product names, nothing else.",
		history.String(), catalog.String())

	answer, err := a.LLM.Complete(c.Request.Context(), []services.ChatTurn{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		log.Println("⚠️ Recommendation model call failed:", err)
		return nil
	}

	var names []string
	// Models occasionally wrap the array in a code fence; strip it.
	answer = strings.TrimSpace(answer)
	answer = strings.TrimPrefix(answer, "```json")
	answer = strings.TrimPrefix(answer, "```")
	answer = strings.TrimSuffix(answer, "```")
	if err := json.Unmarshal([]byte(strings.TrimSpace(answer)), &names); err != nil {
		log.Println("⚠️ Recommendation response was not a JSON array:", err)
		return nil
	}

	byName := make(map[string]models.Product, len(products))
	for _, p := range products {
		byName[strings.ToLower(p.Name)] = p
	}

	var picks []models.Product
	for _, name := range names {
		if p, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
			picks = append(picks, p)
		}
	}
	return picks
}

func bestSellers(products []models.Product) []models.Product {
	picks := make([]models.Product, 0, 4)
	for _, p := range products {
		if p.IsBestSeller {
			picks = append(picks, p)
		}
		if len(picks) == 4 {
			break
		}
	}
	return picks
}
