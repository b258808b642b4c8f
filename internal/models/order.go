package models

import (
	"time"

	"github.com/gocql/gocql"
)

// OrderStatus is the fulfillment dimension of an order. It is tracked
// independently of PaymentStatus; the two never couple implicitly.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions is the allowed fulfillment transition table. Cancelled is
// reachable from any non-terminal state; delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderDelivered, OrderCancelled},
	OrderDelivered: {},
	OrderCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether the fulfillment status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus tracks manual UPI verification by an admin.
type PaymentStatus string

const (
	PaymentPendingVerification PaymentStatus = "pending_verification"
	PaymentPaid                PaymentStatus = "paid"
	PaymentFailed              PaymentStatus = "failed"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPendingVerification: {PaymentPaid, PaymentFailed},
	PaymentPaid:                {},
	PaymentFailed:              {},
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order amounts are in paise. TotalAmount is post-discount and never negative.
type Order struct {
	ID              gocql.UUID    `json:"id" db:"order_id"`
	UserID          gocql.UUID    `json:"userId" db:"user_id"`
	Status          OrderStatus   `json:"status" db:"status"`
	TotalAmount     int           `json:"totalAmount" db:"total_amount"`
	DiscountAmount  int           `json:"discountAmount" db:"discount_amount"`
	PromoCode       string        `json:"promoCode,omitempty" db:"promo_code"`
	GiftCardCode    string        `json:"giftCardCode,omitempty" db:"gift_card_code"`
	PaymentMethod   string        `json:"paymentMethod" db:"payment_method"`
	PaymentStatus   PaymentStatus `json:"paymentStatus" db:"payment_status"`
	PaymentDetails  string        `json:"paymentDetails,omitempty" db:"payment_details"`
	DeliveryAddress string        `json:"deliveryAddress" db:"delivery_address"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`

	Items []OrderItem `json:"items,omitempty"`
	User  *PublicUser `json:"user,omitempty"` // filled on the admin listing
}

// OrderItem snapshots the product price at order time. PriceAtTime is never
// recomputed from the catalog.
type OrderItem struct {
	ID          gocql.UUID `json:"id" db:"item_id"`
	OrderID     gocql.UUID `json:"orderId" db:"order_id"`
	ProductID   gocql.UUID `json:"productId" db:"product_id"`
	ProductName string     `json:"productName,omitempty" db:"product_name"`
	Quantity    int        `json:"quantity" db:"quantity"`
	PriceAtTime int        `json:"priceAtTime" db:"price_at_time"`
}
