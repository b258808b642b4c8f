package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Catalog categories. Free text is rejected at the handler level.
const (
	CategoryTea    = "Tea"
	CategoryCoffee = "Coffee"
	CategorySnacks = "Snacks"
)

func ValidCategory(c string) bool {
	return c == CategoryTea || c == CategoryCoffee || c == CategorySnacks
}

// Product prices are stored in paise (the minor currency unit).
type Product struct {
	ID           gocql.UUID `json:"id" db:"product_id"`
	Name         string     `json:"name" db:"name"`
	HindiName    string     `json:"hindiName" db:"hindi_name"`
	Description  string     `json:"description" db:"description"`
	Price        int        `json:"price" db:"price"`
	Category     string     `json:"category" db:"category"`
	ImageURL     string     `json:"imageUrl" db:"image_url"`
	Ingredients  string     `json:"ingredients" db:"ingredients"`
	Weight       string     `json:"weight" db:"weight"`
	Stock        int        `json:"stock" db:"stock"`
	IsBestSeller bool       `json:"isBestSeller" db:"is_best_seller"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}
