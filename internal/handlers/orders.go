package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"chaicraft_back_end/internal/checkout"
	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/store"
	"chaicraft_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

type createOrderInput struct {
	Items           []checkout.RequestedItem `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress string                   `json:"deliveryAddress" binding:"required"`
	PromoCode       string                   `json:"promoCode"`
	GiftCardCode    string                   `json:"giftCardCode"`
	PaymentDetails  string                   `json:"paymentDetails"`
	// TotalAmount is what the client displayed at checkout. When present it
	// must match the server-side total or the order is rejected.
	TotalAmount *int `json:"totalAmount"`
}

// CreateOrder prices the cart server-side, applies promo and gift card
// discounts, redeems the gift card balance and persists the order with its
// items in one batch. The client never dictates prices or discounts.
func (a *API) CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input createOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
		return
	}

	ids := make([]gocql.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}
	catalog, err := a.Store.GetProductsByID(ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load products"})
		return
	}

	assembly, err := checkout.Assemble(input.Items, catalog)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	promoDiscount := 0
	if input.PromoCode != "" {
		promo, err := a.Store.GetPromoByCode(input.PromoCode)
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Promo code not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to check promo code"})
			return
		}
		promoDiscount, err = checkout.ResolvePromoDiscount(*promo, assembly.Subtotal)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}

	cardDiscount := 0
	if input.GiftCardCode != "" {
		card, err := a.Store.GetGiftCardByCode(input.GiftCardCode)
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Gift card not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to check gift card"})
			return
		}
		cardDiscount, err = checkout.ResolveGiftCardDiscount(*card, assembly.Subtotal, promoDiscount)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}

	assembly.ApplyDiscount(promoDiscount + cardDiscount)

	if input.TotalAmount != nil && *input.TotalAmount != assembly.Total {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "Order total does not match the server-side price",
			"expected": assembly.Total,
		})
		return
	}

	// The balance comes off before the write. If the batch fails the amount
	// is credited back; a crash between the two leaves a discrepancy an
	// admin can fix from the dashboard, which beats double-spending.
	cardRedeemed := false
	if cardDiscount > 0 {
		if err := a.Store.RedeemGiftCard(input.GiftCardCode, cardDiscount); err != nil {
			switch err {
			case store.ErrInsufficientBalance:
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Gift card balance is insufficient"})
			case store.ErrConcurrentUpdate:
				c.JSON(http.StatusConflict, gin.H{"error": "Gift card is being used elsewhere, try again"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to redeem gift card"})
			}
			return
		}
		cardRedeemed = true
	}

	order := models.Order{
		ID:              gocql.TimeUUID(),
		UserID:          userID,
		Status:          models.OrderPending,
		TotalAmount:     assembly.Total,
		DiscountAmount:  assembly.Discount,
		PromoCode:       input.PromoCode,
		GiftCardCode:    input.GiftCardCode,
		PaymentMethod:   "UPI",
		PaymentStatus:   models.PaymentPendingVerification,
		PaymentDetails:  input.PaymentDetails,
		DeliveryAddress: input.DeliveryAddress,
		CreatedAt:       time.Now(),
	}

	if err := a.Store.CreateOrder(&order, assembly.Items); err != nil {
		log.Println("❌ Failed to persist order:", err)
		if cardRedeemed {
			if crErr := a.Store.CreditGiftCard(input.GiftCardCode, cardDiscount); crErr != nil {
				log.Printf("❌ Gift card refund failed for %s (amount %d): %v", input.GiftCardCode, cardDiscount, crErr)
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to place order"})
		return
	}
	order.Items = assembly.Items

	log.Printf("✅ Order placed: %s (total %d paise, %d items)", order.ID, order.TotalAmount, len(order.Items))

	a.Hub.Broadcast("order.created", order)
	a.Events.PublishOrderCreated(order)
	a.sendOrderConfirmation(order)

	c.JSON(http.StatusCreated, order)
}

// sendOrderConfirmation renders the UPI QR and the receipt PDF off the request
// path and hands them to the notifier. Everything in here is best effort.
func (a *API) sendOrderConfirmation(order models.Order) {
	userID := order.UserID
	go func() {
		user, err := a.Store.GetUser(userID)
		if err != nil {
			log.Printf("⚠️ No user for order confirmation %s: %v", order.ID, err)
			return
		}

		var pdf []byte
		qr, err := utils.GenerateUPIQR(order.ID.String(), order.TotalAmount)
		if err != nil {
			log.Println("⚠️ UPI QR generation failed:", err)
		} else {
			pdf, err = utils.RenderReceiptPDF(context.Background(), order.ID.String(), qr)
			if err != nil {
				log.Println("⚠️ Receipt PDF generation failed, sending without attachment:", err)
				pdf = nil
			}
		}

		a.Notifier.OrderConfirmation(order, user.Username, pdf)
	}()
}

func (a *API) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if isAdmin(c) {
		orders, err := a.Store.GetAllOrders()
		if err != nil {
			log.Println("❌ Failed to load orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load orders"})
			return
		}
		// Attach customer identity for the dashboard listing.
		users := map[gocql.UUID]*models.PublicUser{}
		for i := range orders {
			pub, seen := users[orders[i].UserID]
			if !seen {
				if u, err := a.Store.GetUser(orders[i].UserID); err == nil {
					p := u.Public()
					pub = &p
				}
				users[orders[i].UserID] = pub
			}
			orders[i].User = pub
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	orders, err := a.Store.GetOrdersByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// loadOrderForViewer fetches the order and enforces owner-or-admin access.
// Non-owners get the same 404 as a missing order.
func (a *API) loadOrderForViewer(c *gin.Context) (*models.Order, bool) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return nil, false
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}

	order, err := a.Store.GetOrder(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load order"})
		return nil, false
	}
	if order.UserID != userID && !isAdmin(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return nil, false
	}
	return order, true
}

func (a *API) GetOrder(c *gin.Context) {
	order, ok := a.loadOrderForViewer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order)
}

type orderStatusInput struct {
	Status        *models.OrderStatus   `json:"status"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus"`
}

// UpdateOrderStatus moves the fulfillment and payment dimensions
// independently. Marking a payment as paid does not confirm the order; the
// admin does that as a separate explicit step.
func (a *API) UpdateOrderStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input orderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil || (input.Status == nil && input.PaymentStatus == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide status and/or paymentStatus"})
		return
	}

	order, err := a.Store.GetOrder(id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load order"})
		return
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("Unknown order status %q", *input.Status)})
			return
		}
		if !order.Status.CanTransitionTo(*input.Status) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": fmt.Sprintf("Cannot move order from %s to %s", order.Status, *input.Status),
			})
			return
		}
	}
	if input.PaymentStatus != nil {
		if !input.PaymentStatus.Valid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("Unknown payment status %q", *input.PaymentStatus)})
			return
		}
		if !order.PaymentStatus.CanTransitionTo(*input.PaymentStatus) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": fmt.Sprintf("Cannot move payment from %s to %s", order.PaymentStatus, *input.PaymentStatus),
			})
			return
		}
	}

	if err := a.Store.UpdateOrderStatus(id, input.Status, input.PaymentStatus); err != nil {
		log.Println("❌ Failed to update order status:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update order"})
		return
	}

	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		order.PaymentStatus = *input.PaymentStatus
	}

	log.Printf("✅ Order %s updated: status=%s payment=%s", order.ID, order.Status, order.PaymentStatus)

	a.Hub.Broadcast("order.status_changed", order)
	a.Events.PublishOrderStatusChanged(*order)
	if user, err := a.Store.GetUser(order.UserID); err == nil {
		a.Notifier.OrderStatusChanged(*order, user.Username)
	}

	c.JSON(http.StatusOK, order)
}

// OrderQR serves the UPI payment QR for an order as a PNG.
func (a *API) OrderQR(c *gin.Context) {
	order, ok := a.loadOrderForViewer(c)
	if !ok {
		return
	}

	png, err := utils.GenerateUPIQR(order.ID.String(), order.TotalAmount)
	if err != nil {
		log.Println("❌ QR generation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to generate payment QR"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// OrderReceipt renders the receipt PDF on demand.
func (a *API) OrderReceipt(c *gin.Context) {
	order, ok := a.loadOrderForViewer(c)
	if !ok {
		return
	}

	qr, err := utils.GenerateUPIQR(order.ID.String(), order.TotalAmount)
	if err != nil {
		qr = nil
	}
	pdf, err := utils.RenderReceiptPDF(c.Request.Context(), order.ID.String(), qr)
	if err != nil {
		log.Println("❌ Receipt PDF generation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to generate receipt"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=chaicraft_receipt_%s.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
