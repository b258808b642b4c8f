package utils

import (
	"strings"
	"testing"

	"chaicraft_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRupees(t *testing.T) {
	assert.Equal(t, "₹150.50", Rupees(15050))
	assert.Equal(t, "₹20.00", Rupees(2000))
	assert.Equal(t, "₹0.07", Rupees(7))
}

func TestOrderConfirmationHTMLIncludesItemsAndDiscount(t *testing.T) {
	order := models.Order{
		TotalAmount:    4300,
		DiscountAmount: 10700,
		Items: []models.OrderItem{
			{ProductName: "Masala Chai", Quantity: 2, PriceAtTime: 7500},
		},
	}

	html := OrderConfirmationHTML(order)

	assert.Contains(t, html, "Masala Chai")
	assert.Contains(t, html, "₹150.00") // 2 x 75.00 line total
	assert.Contains(t, html, "₹107.00") // discount row
	assert.Contains(t, html, "₹43.00")  // order total
}

func TestOrderConfirmationHTMLOmitsDiscountRowWhenZero(t *testing.T) {
	order := models.Order{
		TotalAmount: 7500,
		Items: []models.OrderItem{
			{ProductName: "Ginger Chai", Quantity: 1, PriceAtTime: 7500},
		},
	}

	html := OrderConfirmationHTML(order)
	assert.False(t, strings.Contains(html, "Discount"))
}

func TestOrderStatusSubjectPerStatus(t *testing.T) {
	confirmed := models.Order{Status: models.OrderConfirmed}
	cancelled := models.Order{Status: models.OrderCancelled}

	assert.NotEqual(t, OrderStatusSubject(confirmed), OrderStatusSubject(cancelled))
}
