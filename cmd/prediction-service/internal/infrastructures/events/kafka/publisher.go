package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/models"
	kafkago "github.com/segmentio/kafka-go"
)

const EventPredictionCompleted = "prediction.completed"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type Publisher struct {
	writer  messageWriter
	timeout time.Duration
}

// PredictionCompleted is the payload of EventPredictionCompleted. Features
// are omitted; consumers read them from the prediction history.
type PredictionCompleted struct {
	Event           string    `json:"event"`
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	OriginIATA      string    `json:"origin_iata"`
	DestinationIATA string    `json:"destination_iata"`
	Value           float64   `json:"value"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewPublisher(brokers []string, topic string, timeout time.Duration) *Publisher {
	return newPublisher(&kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		Async:        false,
	}, timeout)
}

func newPublisher(writer messageWriter, timeout time.Duration) *Publisher {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Publisher{writer: writer, timeout: timeout}
}

func (p *Publisher) PublishCompleted(ctx context.Context, record models.Record) error {
	payload, err := json.Marshal(PredictionCompleted{
		Event:           EventPredictionCompleted,
		ID:              record.ID,
		Kind:            string(record.Kind),
		OriginIATA:      record.OriginIATA,
		DestinationIATA: record.DestinationIATA,
		Value:           record.Value,
		CreatedAt:       record.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal prediction event: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(writeCtx, kafkago.Message{
		Key:   []byte(record.ID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event", Value: []byte(EventPredictionCompleted)},
			{Key: "kind", Value: []byte(record.Kind)},
		},
		Time: record.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("kafka write prediction event: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
