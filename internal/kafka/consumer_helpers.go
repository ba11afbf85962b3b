package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/giftlist/internal/usecase"
	"github.com/Gunvolt24/giftlist/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

type outcome int

const (
	outcomeDone outcome = iota
	outcomeSkip
	outcomeRetry
)

// processWithRetry — обрабатывает сообщение, повторяя временные ошибки; true — оффсет можно коммитить,
// false — сообщение отброшено или ctx отменён.
func (c *Consumer) processWithRetry(ctx context.Context, topic string, msg *kafka.Message) bool {
	delay := c.retryInitial
	for attempt := 1; ; attempt++ {
		switch c.handleMessage(ctx, topic, msg) {
		case outcomeDone, outcomeSkip:
			return true
		}
		if attempt >= c.maxAttempts {
			metrics.KafkaMessagesDropped.WithLabelValues(topic).Inc()
			c.log.Errorf(ctx, "dropping offset=%d after %d attempts", msg.Offset, attempt)
			return false
		}
		if !c.sleepWithBackoff(ctx, c.withJitterEqual(delay)) {
			return false
		}
		delay = c.nextBackoff(delay)
	}
}

// handleMessage — одна попытка обработки с таймаутом processTimeout.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) outcome {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.HandleEvent(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return outcomeDone
	case errors.Is(err, usecase.ErrInvalidEvent):
		// Невалидное событие не станет валидным при повторе: коммитим и пропускаем.
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid event offset=%d: %v (skipped)", msg.Offset, err)
		return outcomeSkip
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "process failed offset=%d: %v (will retry)", msg.Offset, err)
		return outcomeRetry
	}
}

// commitSafely — коммит оффсета; ошибка только логируется.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff — ждёт d или отмену ctx; false при отмене.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// nextBackoff — удвоение задержки с потолком retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}
