// Package events publishes order lifecycle events to Kafka for downstream
// fulfillment systems. The producer is optional: without KAFKA_BROKERS the
// rest of the service runs unchanged.
package events

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"chaicraft_back_end/internal/models"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const (
	OrderCreatedTopic       = "order.created"
	OrderStatusChangedTopic = "order.status_changed"
)

type OrderCreatedEvent struct {
	EventID     string    `json:"event_id"`
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	TotalAmount int       `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
	EventTime   time.Time `json:"event_time"`
}

type OrderStatusChangedEvent struct {
	EventID       string               `json:"event_id"`
	OrderID       string               `json:"order_id"`
	Status        models.OrderStatus   `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	EventTime     time.Time            `json:"event_time"`
}

type Producer struct {
	producer sarama.SyncProducer
}

// NewProducer connects to the comma-separated broker list.
func NewProducer(brokers string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), config)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: producer}, nil
}

// PublishOrderCreated is best effort: a Kafka outage never fails a checkout.
// A nil receiver is a configured-off producer and a no-op.
func (p *Producer) PublishOrderCreated(order models.Order) {
	if p == nil {
		return
	}
	event := OrderCreatedEvent{
		EventID:     uuid.NewString(),
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		CreatedAt:   order.CreatedAt,
		EventTime:   time.Now(),
	}
	p.publish(OrderCreatedTopic, event.OrderID, event)
}

func (p *Producer) PublishOrderStatusChanged(order models.Order) {
	if p == nil {
		return
	}
	event := OrderStatusChangedEvent{
		EventID:       uuid.NewString(),
		OrderID:       order.ID.String(),
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		EventTime:     time.Now(),
	}
	p.publish(OrderStatusChangedTopic, event.OrderID, event)
}

func (p *Producer) publish(topic, key string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Event marshal failed for %s: %v", topic, err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		log.Printf("❌ Event publish failed for %s: %v", topic, err)
		return
	}
	log.Printf("📨 Event published: %s (partition %d, offset %d)", topic, partition, offset)
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
