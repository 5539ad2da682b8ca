package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ecomkit/order-lifecycle/internal/config"
	"github.com/ecomkit/order-lifecycle/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
}

// kafkaHandler consumes checkout-completed events from the checkout
// collaborator and turns each into an order. Creation is idempotent on
// the repo side, so redelivered messages are safe.
type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	creator  OrderCreator
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, creator OrderCreator) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.CheckoutTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		creator:  creator,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleCheckout(ctx, m); err != nil {
			h.logger.Error("failed to handle checkout event", slog.Any("error", err))
			checkoutsFailed.Inc()

			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			checkoutsDLQ.Inc()
		} else {
			checkoutsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
			commitErrors.Inc()
		}
	}
}

func (h *kafkaHandler) handleCheckout(ctx context.Context, m kafka.Message) error {
	var req CreateOrderRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal checkout event: %w", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid checkout event: %w", err)
	}

	order, err := h.creator.CreateOrder(ctx, CreateRequestToDraft(req))
	if err != nil {
		return err
	}

	h.logger.Debug("order created from checkout event", slog.String("order_id", order.ID))
	return nil
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
