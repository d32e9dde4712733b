package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/models"
	kafkago "github.com/segmentio/kafka-go"
)

type writerMock struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (w *writerMock) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *writerMock) Close() error {
	w.closed = true
	return nil
}

func TestPublishCompleted_WritesKeyedEvent(t *testing.T) {
	w := &writerMock{}
	p := newPublisher(w, time.Second)

	createdAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	err := p.PublishCompleted(context.Background(), models.Record{
		ID:              "0b7d7c1e-8f3c-4d55-9a43-1b2f1c9d7a10",
		Kind:            models.KindDelay,
		OriginIATA:      "SYD",
		DestinationIATA: "MEL",
		Value:           12.5,
		CreatedAt:       createdAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(w.msgs))
	}

	msg := w.msgs[0]
	if string(msg.Key) != "0b7d7c1e-8f3c-4d55-9a43-1b2f1c9d7a10" {
		t.Fatalf("unexpected key: %s", msg.Key)
	}

	var event PredictionCompleted
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if event.Event != EventPredictionCompleted || event.Kind != "delay" || event.Value != 12.5 {
		t.Fatalf("unexpected event: %+v", event)
	}
	if !event.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created_at: %s", event.CreatedAt)
	}
}

func TestPublishCompleted_WrapsWriterError(t *testing.T) {
	cause := errors.New("broker down")
	p := newPublisher(&writerMock{err: cause}, time.Second)

	err := p.PublishCompleted(context.Background(), models.Record{ID: "x", Kind: models.KindFare})
	if !errors.Is(err, cause) {
		t.Fatalf("unexpected error: got %v want %v", err, cause)
	}
}

func TestClose(t *testing.T) {
	w := &writerMock{}
	if err := newPublisher(w, 0).Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.closed {
		t.Fatal("writer was not closed")
	}
}
