// Package checkout holds the pricing rules applied when an order is placed:
// promo code resolution, gift card application and line-item assembly. All
// amounts are integers in the minor currency unit (paise).
package checkout

import (
	"errors"
	"fmt"

	"chaicraft_back_end/internal/models"

	"github.com/gocql/gocql"
)

var (
	ErrPromoInactive    = errors.New("promo code is no longer active")
	ErrBelowMinimum     = errors.New("order subtotal is below the promo minimum")
	ErrGiftCardInactive = errors.New("gift card is no longer active")
	ErrEmptyOrder       = errors.New("order has no items")
)

// MaxLineQuantity bounds a single order line. Anything larger is a typo or an
// attempt to overflow the paise arithmetic into a negative subtotal.
const MaxLineQuantity = 10000

// ProductNotFoundError rejects the whole order; there is never a partial order
// with silently skipped lines.
type ProductNotFoundError struct {
	ProductID gocql.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// ResolvePromoDiscount validates a promo against a subtotal and returns the
// discount it grants. Percentage promos floor; fixed promos are clamped to the
// subtotal so the net total can never go negative.
func ResolvePromoDiscount(promo models.Promo, subtotal int) (int, error) {
	if !promo.IsActive {
		return 0, ErrPromoInactive
	}
	if subtotal < promo.MinOrderAmount {
		return 0, ErrBelowMinimum
	}

	switch promo.Type {
	case models.PromoPercentage:
		return subtotal * promo.Value / 100, nil
	case models.PromoFixed:
		if promo.Value > subtotal {
			return subtotal, nil
		}
		return promo.Value, nil
	default:
		return 0, fmt.Errorf("unknown promo type %q", promo.Type)
	}
}

// ResolveGiftCardDiscount returns how much of the card can be consumed: the
// card only covers whatever the promo has not already covered, and never more
// than its balance.
func ResolveGiftCardDiscount(card models.GiftCard, subtotal, alreadyApplied int) (int, error) {
	if !card.IsActive {
		return 0, ErrGiftCardInactive
	}
	remaining := subtotal - alreadyApplied
	if remaining <= 0 {
		return 0, nil
	}
	if card.Balance < remaining {
		return card.Balance, nil
	}
	return remaining, nil
}

// RequestedItem is one (product, quantity) pair from the client cart.
type RequestedItem struct {
	ProductID gocql.UUID `json:"productId" binding:"required"`
	Quantity  int        `json:"quantity" binding:"required,min=1,max=10000"`
}

// Assembly is the priced result of a checkout before persistence.
type Assembly struct {
	Items    []models.OrderItem
	Subtotal int
	Discount int // clamped, promo + gift card combined
	Total    int // Subtotal - Discount, never negative
}

// Assemble prices the requested items against the catalog snapshot. Every
// product must exist; PriceAtTime is fixed here and never recomputed.
func Assemble(requested []RequestedItem, catalog map[gocql.UUID]models.Product) (*Assembly, error) {
	if len(requested) == 0 {
		return nil, ErrEmptyOrder
	}

	a := &Assembly{}
	for _, req := range requested {
		if req.Quantity < 1 || req.Quantity > MaxLineQuantity {
			return nil, fmt.Errorf("invalid quantity %d", req.Quantity)
		}
		product, ok := catalog[req.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: req.ProductID}
		}
		a.Items = append(a.Items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			PriceAtTime: product.Price,
		})
		a.Subtotal += product.Price * req.Quantity
	}
	return a, nil
}

// ApplyDiscount clamps and records the combined discount on the assembly.
func (a *Assembly) ApplyDiscount(discount int) {
	if discount < 0 {
		discount = 0
	}
	if discount > a.Subtotal {
		discount = a.Subtotal
	}
	a.Discount = discount
	a.Total = a.Subtotal - a.Discount
}
