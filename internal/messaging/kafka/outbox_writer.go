package kafka

import (
	"context"
	"database/sql"
	"encoding/json"

	"go-shiftplan/internal/events"

	"github.com/google/uuid"
)

// Enqueue stores a lifecycle event in the outbox within tx. A nil repo is
// a no-op so services can run without messaging.
func Enqueue(ctx context.Context, repo OutboxRepository, tx *sql.Tx, topic string, event events.LifecycleEvent) error {
	if repo == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return repo.WithTx(tx).Create(ctx, OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Topic:         topic,
		Payload:       payload,
		Status:        OutboxStatusPending,
	})
}
