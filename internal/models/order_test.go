package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, OrderPending.CanTransitionTo(OrderConfirmed))
	assert.True(t, OrderPending.CanTransitionTo(OrderCancelled))
	assert.True(t, OrderConfirmed.CanTransitionTo(OrderDelivered))
	assert.True(t, OrderConfirmed.CanTransitionTo(OrderCancelled))

	assert.False(t, OrderPending.CanTransitionTo(OrderDelivered), "no skipping confirmation")
	assert.False(t, OrderDelivered.CanTransitionTo(OrderCancelled), "delivered is terminal")
	assert.False(t, OrderCancelled.CanTransitionTo(OrderPending), "cancelled is terminal")
	assert.False(t, OrderConfirmed.CanTransitionTo(OrderPending), "no reverse transitions")
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, PaymentPendingVerification.CanTransitionTo(PaymentPaid))
	assert.True(t, PaymentPendingVerification.CanTransitionTo(PaymentFailed))

	assert.False(t, PaymentPaid.CanTransitionTo(PaymentFailed))
	assert.False(t, PaymentFailed.CanTransitionTo(PaymentPaid))
	assert.False(t, PaymentStatus("refunded").Valid())
}
