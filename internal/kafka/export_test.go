package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// PublisherConfigForTest — writer, который строит PublisherConfig.
func PublisherConfigForTest(brokers []string, topic string, timeout time.Duration) *kafka.Writer {
	cfg := PublisherConfig{Brokers: brokers, Topic: topic, WriteTimeout: timeout}
	return cfg.writer()
}
