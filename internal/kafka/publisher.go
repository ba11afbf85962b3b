package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/Gunvolt24/giftlist/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// messageWriter — минимальный контракт над kafka.Writer для подмены в тестах.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — публикует RegistryEvent в топик; ключ — id продукта или вид события.
type Publisher struct {
	writer    messageWriter
	topic     string
	closeOnce sync.Once
}

// NewPublisher — конструктор поверх kafka.Writer.
func NewPublisher(cfg *PublisherConfig) *Publisher {
	return &Publisher{writer: cfg.writer(), topic: cfg.Topic}
}

// Publish — синхронная запись одного события.
func (p *Publisher) Publish(ctx context.Context, event *domain.RegistryEvent) error {
	if event == nil {
		return fmt.Errorf("publish: nil event")
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	key := event.ProductID
	if key == "" {
		key = event.Kind
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: raw,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("write event: %w", err)
	}
	metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "ok").Inc()
	return nil
}

// Close — закрывает writer, дожидаясь отправки буфера.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
