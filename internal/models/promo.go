package models

import (
	"time"

	"github.com/gocql/gocql"
)

const (
	PromoPercentage = "percentage"
	PromoFixed      = "fixed"
)

// Promo values are percentage points for "percentage" promos and paise for
// "fixed" promos. MinOrderAmount is in paise.
type Promo struct {
	ID             gocql.UUID `json:"id" db:"promo_id"`
	Code           string     `json:"code" db:"code"`
	Type           string     `json:"type" db:"type"`
	Value          int        `json:"value" db:"value"`
	MinOrderAmount int        `json:"minOrderAmount" db:"min_order_amount"`
	IsActive       bool       `json:"isActive" db:"is_active"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

// GiftCard balances are in paise. Redemption decrements the balance by the
// amount actually consumed.
type GiftCard struct {
	ID        gocql.UUID `json:"id" db:"gift_card_id"`
	Code      string     `json:"code" db:"code"`
	Balance   int        `json:"balance" db:"balance"`
	IsActive  bool       `json:"isActive" db:"is_active"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
