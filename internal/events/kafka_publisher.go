package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medical-store/internal/config"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KafkaEventPublisher implements EventPublisher using Kafka
type KafkaEventPublisher struct {
	producer    sarama.SyncProducer
	logger      *zap.Logger
	config      *config.Config
	sendTimeout time.Duration
}

const defaultSendTimeout = 5 * time.Second

// NewKafkaEventPublisher creates a new Kafka event publisher
func NewKafkaEventPublisher(cfg *config.Config, logger *zap.Logger) (*KafkaEventPublisher, error) {
	producer, err := sarama.NewSyncProducer(cfg.KafkaBrokers, newProducerConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return NewKafkaEventPublisherWithProducer(producer, cfg, logger), nil
}

// NewKafkaEventPublisherWithProducer wraps an existing producer.
func NewKafkaEventPublisherWithProducer(producer sarama.SyncProducer, cfg *config.Config, logger *zap.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer:    producer,
		logger:      logger,
		config:      cfg,
		sendTimeout: defaultSendTimeout,
	}
}

func newProducerConfig(cfg *config.Config) *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = cfg.KafkaClientID
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = cfg.KafkaRetries
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	// Parse acks
	switch cfg.KafkaAcks {
	case "0":
		config.Producer.RequiredAcks = sarama.NoResponse
	case "1":
		config.Producer.RequiredAcks = sarama.WaitForLocal
	default:
		config.Producer.RequiredAcks = sarama.WaitForAll
	}
	// Idempotent producers require acks=all
	if config.Producer.RequiredAcks != sarama.WaitForAll {
		config.Producer.Idempotent = false
	}
	return config
}

// Publish publishes an event to Kafka with retries and exponential backoff.
// Only failed sends are retried. A send that times out may still be
// delivered, so it is reported as an error without sending the event again.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event interface{}) error {
	message, err := p.buildMessage(event)
	if err != nil {
		return err
	}

	maxRetries := 3
	baseDelay := 100 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		sendCtx, cancel := context.WithTimeout(ctx, p.sendTimeout)
		done := make(chan error, 1)

		go func() {
			partition, offset, err := p.producer.SendMessage(message)
			if err != nil {
				done <- err
				return
			}
			p.logger.Info("Event published to Kafka",
				zap.String("topic", message.Topic),
				zap.Int32("partition", partition),
				zap.Int64("offset", offset),
				zap.String("event-type", EventType(event)),
				zap.Int("attempt", attempt+1),
			)
			done <- nil
		}()

		select {
		case err := <-done:
			cancel()
			if err == nil {
				return nil
			}
			p.logger.Warn("Failed to publish event to Kafka, retrying",
				zap.String("topic", message.Topic),
				zap.Error(err),
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", maxRetries),
			)
		case <-sendCtx.Done():
			cancel()
			p.logger.Warn("Timeout publishing event to Kafka, send still in flight",
				zap.String("topic", message.Topic),
				zap.Error(sendCtx.Err()),
				zap.Int("attempt", attempt+1),
			)
			return fmt.Errorf("timed out publishing event to Kafka: %w", sendCtx.Err())
		}

		// Exponential backoff: 100ms, 200ms
		if attempt < maxRetries-1 {
			delay := baseDelay * time.Duration(1<<uint(attempt))
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled during backoff: %w", ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("failed to publish event to Kafka after %d attempts", maxRetries)
}

func (p *KafkaEventPublisher) buildMessage(event interface{}) (*sarama.ProducerMessage, error) {
	topic, err := p.getTopicForEvent(event)
	if err != nil {
		return nil, fmt.Errorf("failed to determine topic: %w", err)
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(eventJSON),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(EventType(event))},
			{Key: []byte("event-id"), Value: []byte(uuid.New().String())},
			{Key: []byte("timestamp"), Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}

	if partitionKey := getPartitionKey(event); partitionKey != "" {
		message.Key = sarama.StringEncoder(partitionKey)
	}
	return message, nil
}

// Close closes the Kafka producer
func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// getTopicForEvent routes item lifecycle events and stock-level events to separate topics
func (p *KafkaEventPublisher) getTopicForEvent(event interface{}) (string, error) {
	switch event.(type) {
	case ItemCreatedEvent, ItemUpdatedEvent, ItemDeletedEvent:
		return p.config.KafkaTopicItems, nil
	case QuantityAdjustedEvent, InventoryResetEvent:
		return p.config.KafkaTopicStock, nil
	default:
		return "", fmt.Errorf("unknown event type: %T", event)
	}
}

// getPartitionKey keys messages by item id so one item's events stay ordered
func getPartitionKey(event interface{}) string {
	switch e := event.(type) {
	case ItemCreatedEvent:
		return e.ItemID
	case ItemUpdatedEvent:
		return e.ItemID
	case ItemDeletedEvent:
		return e.ItemID
	case QuantityAdjustedEvent:
		return e.ItemID
	}
	return ""
}
