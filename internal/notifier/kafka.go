package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecomkit/order-lifecycle/internal/config"
	"github.com/ecomkit/order-lifecycle/internal/entities"

	"github.com/segmentio/kafka-go"
)

type orderEventMessage struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type cartRequestMessage struct {
	CustomerID string            `json:"customer_id"`
	Items      []cartItemMessage `json:"items"`
}

type cartItemMessage struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// kafkaNotifier publishes post-transition events for the notification
// collaborator and reorder requests for the cart collaborator.
type kafkaNotifier struct {
	logger *slog.Logger
	events *kafka.Writer
	cart   *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		events: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		cart: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.CartTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (n *kafkaNotifier) PublishOrderEvent(ctx context.Context, e entities.OrderEvent) error {
	data, err := json.Marshal(orderEventMessage{
		Type:       e.Type,
		OrderID:    e.OrderID,
		CustomerID: e.CustomerID,
		Status:     e.Status.String(),
		OccurredAt: e.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	return n.events.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID),
		Value: data,
	})
}

func (n *kafkaNotifier) PublishCartRequest(ctx context.Context, req entities.CartRequest) error {
	msg := cartRequestMessage{
		CustomerID: req.CustomerID,
		Items:      make([]cartItemMessage, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		msg.Items = append(msg.Items, cartItemMessage{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal cart request: %w", err)
	}

	return n.cart.WriteMessages(ctx, kafka.Message{
		Key:   []byte(req.CustomerID),
		Value: data,
	})
}

func (n *kafkaNotifier) Close() error {
	if err := n.events.Close(); err != nil {
		return err
	}
	return n.cart.Close()
}
