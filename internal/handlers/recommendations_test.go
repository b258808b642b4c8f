package handlers

import (
	"testing"

	"chaicraft_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBestSellersFallback(t *testing.T) {
	products := []models.Product{
		{Name: "Masala Chai", IsBestSeller: true},
		{Name: "Elaichi Chai"},
		{Name: "Ginger Chai", IsBestSeller: true},
		{Name: "Filter Coffee"},
	}

	picks := bestSellers(products)

	assert.Len(t, picks, 2)
	assert.Equal(t, "Masala Chai", picks[0].Name)
	assert.Equal(t, "Ginger Chai", picks[1].Name)
}

func TestBestSellersCapsAtFour(t *testing.T) {
	var products []models.Product
	for i := 0; i < 10; i++ {
		products = append(products, models.Product{IsBestSeller: true})
	}

	assert.Len(t, bestSellers(products), 4)
}

func TestBestSellersEmptyCatalog(t *testing.T) {
	assert.Empty(t, bestSellers(nil))
}
