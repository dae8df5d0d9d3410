package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

const EventOrderPlaced = "order.placed"

// Publisher delivers order events somewhere outside the process.
type Publisher interface {
	Publish(ctx context.Context, order Order) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(topic string, brokers ...string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}}
}

func (p *KafkaPublisher) Publish(ctx context.Context, order Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventOrderPlaced)},
			{Key: "store_id", Value: []byte(order.StoreID)},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher records orders in the log only.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log.With("component", "publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, order Order) error {
	p.log.InfoContext(ctx, EventOrderPlaced,
		"order_id", order.ID,
		"store_id", order.StoreID,
		"items", len(order.Items),
		"total", order.Summary.Total,
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
