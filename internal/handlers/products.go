package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

const productsCacheKey = "products:all"
const productsCacheTTL = time.Hour

// GetProducts serves the catalog, Redis-cached for an hour. Writes through
// the admin product routes invalidate the key.
func (a *API) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := a.Redis.Get(ctx, productsCacheKey).Result(); err == nil {
		var products []models.Product
		if json.Unmarshal([]byte(cached), &products) == nil {
			c.JSON(http.StatusOK, products)
			return
		}
	}

	products, err := a.Store.GetProducts()
	if err != nil {
		log.Println("❌ Failed to load products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load products"})
		return
	}

	if payload, err := json.Marshal(products); err == nil {
		if err := a.Redis.Set(ctx, productsCacheKey, payload, productsCacheTTL).Err(); err != nil {
			log.Println("⚠️ Failed to cache products:", err)
		}
	}

	c.JSON(http.StatusOK, products)
}

func (a *API) invalidateProductCache(ctx context.Context) {
	if err := a.Redis.Del(ctx, productsCacheKey).Err(); err != nil {
		log.Println("⚠️ Failed to invalidate product cache:", err)
	}
}

func (a *API) GetProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	product, err := a.Store.GetProduct(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

type productInput struct {
	Name         string `json:"name" binding:"required"`
	HindiName    string `json:"hindiName"`
	Description  string `json:"description"`
	Price        int    `json:"price" binding:"required,min=1"`
	Category     string `json:"category" binding:"required"`
	ImageURL     string `json:"imageUrl"`
	Ingredients  string `json:"ingredients"`
	Weight       string `json:"weight"`
	IsBestSeller bool   `json:"isBestSeller"`
	Stock        int    `json:"stock"`
}

func (a *API) CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
		return
	}
	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown product category"})
		return
	}

	product := models.Product{
		ID:           gocql.TimeUUID(),
		Name:         input.Name,
		HindiName:    input.HindiName,
		Description:  input.Description,
		Price:        input.Price,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
		Ingredients:  input.Ingredients,
		Weight:       input.Weight,
		IsBestSeller: input.IsBestSeller,
		Stock:        input.Stock,
	}
	if err := a.Store.CreateProduct(&product); err != nil {
		log.Println("❌ Failed to create product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create product"})
		return
	}

	go a.Search.IndexProduct(product)
	a.invalidateProductCache(c.Request.Context())

	log.Println("✅ Product created:", product.Name)
	c.JSON(http.StatusCreated, product)
}

type productUpdateInput struct {
	Name         *string `json:"name"`
	HindiName    *string `json:"hindiName"`
	Description  *string `json:"description"`
	Price        *int    `json:"price"`
	Category     *string `json:"category"`
	ImageURL     *string `json:"imageUrl"`
	Ingredients  *string `json:"ingredients"`
	Weight       *string `json:"weight"`
	IsBestSeller *bool   `json:"isBestSeller"`
	Stock        *int    `json:"stock"`
}

func (a *API) UpdateProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	product, err := a.Store.GetProduct(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load product"})
		return
	}

	var input productUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
		return
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.HindiName != nil {
		product.HindiName = *input.HindiName
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Price must be positive"})
			return
		}
		product.Price = *input.Price
	}
	if input.Category != nil {
		if !models.ValidCategory(*input.Category) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown product category"})
			return
		}
		product.Category = *input.Category
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Ingredients != nil {
		product.Ingredients = *input.Ingredients
	}
	if input.Weight != nil {
		product.Weight = *input.Weight
	}
	if input.IsBestSeller != nil {
		product.IsBestSeller = *input.IsBestSeller
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := a.Store.UpdateProduct(product); err != nil {
		log.Println("❌ Failed to update product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update product"})
		return
	}

	go a.Search.IndexProduct(*product)
	a.invalidateProductCache(c.Request.Context())

	c.JSON(http.StatusOK, product)
}

func (a *API) DeleteProduct(c *gin.Context) {
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

	if err := a.Store.DeleteProduct(id); err != nil {
		log.Println("❌ Failed to delete product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to delete product"})
		return
	}

	go a.Search.RemoveProduct(id.String())
	a.invalidateProductCache(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// SearchProducts queries Elasticsearch when available, otherwise falls back
// to a substring scan over the catalog.
func (a *API) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	if a.Search.Enabled() {
		hits, err := a.Search.SearchProducts(query)
		if err == nil {
			c.JSON(http.StatusOK, hits)
			return
		}
		log.Println("⚠️ Elasticsearch query failed, falling back to scan:", err)
	}

	products, err := a.Store.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search unavailable"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// UploadProductImage stores the file in MinIO under products/<id><ext> and
// records the object path on the product.
func (a *API) UploadProductImage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	product, err := a.Store.GetProduct(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load product"})
		return
	}

	if !a.Media.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	objectName, err := a.Media.UploadProductImage(c.Request.Context(), product.ID.String(), file)
	if err != nil {
		log.Println("❌ Image upload failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to store image"})
		return
	}

	product.ImageURL = objectName
	if err := a.Store.UpdateProduct(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update product"})
		return
	}
	a.invalidateProductCache(c.Request.Context())

	url, err := a.Media.SignedURL(c.Request.Context(), objectName, 24*time.Hour)
	if err != nil {
		log.Println("⚠️ Failed to presign image URL:", err)
	}

	c.JSON(http.StatusOK, gin.H{"product": product, "imageUrl": url})
}
