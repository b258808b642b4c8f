package checkout

import (
	"testing"

	"chaicraft_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePromoDiscountPercentage(t *testing.T) {
	promo := models.Promo{Code: "CHAI100", Type: models.PromoPercentage, Value: 5, MinOrderAmount: 100, IsActive: true}

	discount, err := ResolvePromoDiscount(promo, 150)
	require.NoError(t, err)
	assert.Equal(t, 7, discount, "5%% of 150 floors to 7")

	_, err = ResolvePromoDiscount(promo, 80)
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestResolvePromoDiscountFixed(t *testing.T) {
	promo := models.Promo{Code: "CHAI300", Type: models.PromoFixed, Value: 35, MinOrderAmount: 300, IsActive: true}

	discount, err := ResolvePromoDiscount(promo, 300)
	require.NoError(t, err)
	assert.Equal(t, 35, discount)
	assert.Equal(t, 265, 300-discount)
}

func TestResolvePromoDiscountFixedClampedToSubtotal(t *testing.T) {
	promo := models.Promo{Code: "BIG", Type: models.PromoFixed, Value: 500, MinOrderAmount: 0, IsActive: true}

	discount, err := ResolvePromoDiscount(promo, 120)
	require.NoError(t, err)
	assert.Equal(t, 120, discount, "fixed promos never exceed the subtotal")
}

func TestResolvePromoDiscountInactive(t *testing.T) {
	promo := models.Promo{Code: "OLD", Type: models.PromoPercentage, Value: 10, IsActive: false}

	_, err := ResolvePromoDiscount(promo, 1000)
	assert.ErrorIs(t, err, ErrPromoInactive)
}

func TestResolvePromoDiscountUnknownType(t *testing.T) {
	promo := models.Promo{Code: "WAT", Type: "bogo", IsActive: true}

	_, err := ResolvePromoDiscount(promo, 1000)
	assert.Error(t, err)
}

func TestResolveGiftCardDiscountFullBalance(t *testing.T) {
	card := models.GiftCard{Code: "GIFT-1234", Balance: 100, IsActive: true}

	discount, err := ResolveGiftCardDiscount(card, 150, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, discount, "full balance consumed on a larger subtotal")
}

func TestResolveGiftCardDiscountCappedByRemainder(t *testing.T) {
	card := models.GiftCard{Code: "GIFT-5678", Balance: 500, IsActive: true}

	// A promo already covers 120 of the 150 subtotal; the card can only
	// offset the remaining 30.
	discount, err := ResolveGiftCardDiscount(card, 150, 120)
	require.NoError(t, err)
	assert.Equal(t, 30, discount)

	discount, err = ResolveGiftCardDiscount(card, 150, 150)
	require.NoError(t, err)
	assert.Equal(t, 0, discount)
}

func TestResolveGiftCardDiscountInactive(t *testing.T) {
	card := models.GiftCard{Code: "DEAD", Balance: 100, IsActive: false}

	_, err := ResolveGiftCardDiscount(card, 150, 0)
	assert.ErrorIs(t, err, ErrGiftCardInactive)
}

func catalogOf(products ...models.Product) map[gocql.UUID]models.Product {
	m := make(map[gocql.UUID]models.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}

func TestAssembleSnapshotsPrices(t *testing.T) {
	chai := models.Product{ID: gocql.TimeUUID(), Name: "Masala Chai", Price: 2000}
	samosa := models.Product{ID: gocql.TimeUUID(), Name: "Samosa", Price: 1500}

	a, err := Assemble([]RequestedItem{
		{ProductID: chai.ID, Quantity: 2},
		{ProductID: samosa.ID, Quantity: 3},
	}, catalogOf(chai, samosa))
	require.NoError(t, err)

	assert.Equal(t, 2*2000+3*1500, a.Subtotal)
	require.Len(t, a.Items, 2)
	assert.Equal(t, 2000, a.Items[0].PriceAtTime)
	assert.Equal(t, "Masala Chai", a.Items[0].ProductName)
	assert.Equal(t, 1500, a.Items[1].PriceAtTime)
}

func TestAssembleRejectsUnknownProduct(t *testing.T) {
	chai := models.Product{ID: gocql.TimeUUID(), Name: "Masala Chai", Price: 2000}
	missing := gocql.TimeUUID()

	_, err := Assemble([]RequestedItem{
		{ProductID: chai.ID, Quantity: 1},
		{ProductID: missing, Quantity: 1},
	}, catalogOf(chai))

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, missing, notFound.ProductID)
}

func TestAssembleRejectsEmptyAndInvalidQuantity(t *testing.T) {
	chai := models.Product{ID: gocql.TimeUUID(), Price: 2000}

	_, err := Assemble(nil, catalogOf(chai))
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = Assemble([]RequestedItem{{ProductID: chai.ID, Quantity: 0}}, catalogOf(chai))
	assert.Error(t, err)
}

func TestAssembleRejectsExcessiveQuantity(t *testing.T) {
	chai := models.Product{ID: gocql.TimeUUID(), Name: "Masala Chai", Price: 29900}

	// A quantity this large would wrap the paise arithmetic into a negative
	// subtotal and a zero payable total.
	_, err := Assemble([]RequestedItem{{ProductID: chai.ID, Quantity: 1 << 50}}, catalogOf(chai))
	assert.Error(t, err)

	_, err = Assemble([]RequestedItem{{ProductID: chai.ID, Quantity: MaxLineQuantity + 1}}, catalogOf(chai))
	assert.Error(t, err)

	a, err := Assemble([]RequestedItem{{ProductID: chai.ID, Quantity: MaxLineQuantity}}, catalogOf(chai))
	require.NoError(t, err)
	assert.Equal(t, 29900*MaxLineQuantity, a.Subtotal)
	assert.GreaterOrEqual(t, a.Subtotal, 0)

	a.ApplyDiscount(0)
	assert.GreaterOrEqual(t, a.Discount, 0)
	assert.Equal(t, a.Subtotal, a.Total)
}

func TestApplyDiscountClamps(t *testing.T) {
	chai := models.Product{ID: gocql.TimeUUID(), Price: 150}
	a, err := Assemble([]RequestedItem{{ProductID: chai.ID, Quantity: 1}}, catalogOf(chai))
	require.NoError(t, err)

	a.ApplyDiscount(100)
	assert.Equal(t, 100, a.Discount)
	assert.Equal(t, 50, a.Total)

	a.ApplyDiscount(9999)
	assert.Equal(t, 150, a.Discount)
	assert.Equal(t, 0, a.Total, "total never goes negative")

	a.ApplyDiscount(-5)
	assert.Equal(t, 0, a.Discount)
	assert.Equal(t, 150, a.Total)
}

// Combined promo + gift card flow from the checkout handler's perspective.
func TestPromoAndGiftCardAreAdditive(t *testing.T) {
	chai := models.Product{ID: gocql.TimeUUID(), Price: 150}
	a, err := Assemble([]RequestedItem{{ProductID: chai.ID, Quantity: 1}}, catalogOf(chai))
	require.NoError(t, err)

	promo := models.Promo{Type: models.PromoPercentage, Value: 5, MinOrderAmount: 100, IsActive: true}
	promoDiscount, err := ResolvePromoDiscount(promo, a.Subtotal)
	require.NoError(t, err)
	assert.Equal(t, 7, promoDiscount)

	card := models.GiftCard{Balance: 100, IsActive: true}
	cardDiscount, err := ResolveGiftCardDiscount(card, a.Subtotal, promoDiscount)
	require.NoError(t, err)
	assert.Equal(t, 100, cardDiscount)

	a.ApplyDiscount(promoDiscount + cardDiscount)
	assert.Equal(t, 107, a.Discount)
	assert.Equal(t, 43, a.Total)
	assert.Equal(t, a.Subtotal, a.Total+a.Discount)
}
