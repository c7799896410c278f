package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-shiftplan/internal/events"
	"go-shiftplan/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Refresher rebuilds derived data for a sede after one of its records
// changed.
type Refresher interface {
	Refresh(ctx context.Context, sede string) error
}

const maxRefreshAttempts = 3

// refreshBackoff is the wait before retry attempt n (1-based).
var refreshBackoff = func(attempt int) time.Duration {
	return time.Duration(attempt) * 2 * time.Second
}

// ConsumeLifecycle reads lifecycle events until ctx is cancelled. Malformed
// messages are committed and skipped. A failed refresh is retried on the
// same message with backoff; after maxRefreshAttempts the message is
// committed and dropped, since later commits would cover its offset anyway.
// The API invalidates the cache on every write, so a dropped refresh only
// costs a cold read.
func ConsumeLifecycle(
	ctx context.Context,
	reader MessageReader,
	refresher Refresher,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.lifecycle")
	log.Info("lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("lifecycle consumer stopped")
				return
			}
			log.Error("fetch lifecycle message failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, reader, refresher, log, msg)
	}
}

func handleMessage(
	ctx context.Context,
	reader MessageReader,
	refresher Refresher,
	log *zap.Logger,
	msg kafkago.Message,
) {
	var event events.LifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.Sede == "" {
		log.Error("decode lifecycle event failed",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	ctx = contextutil.WithRequestID(ctx, event.RequestID)
	ctx = contextutil.WithSede(ctx, event.Sede)

	if err := refreshWithRetry(ctx, refresher, log, event); err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error("refresh after lifecycle event dropped",
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.String("sede", event.Sede),
			zap.Int("attempts", maxRefreshAttempts),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit lifecycle message failed", zap.Error(err))
		return
	}

	log.Info("planilla refreshed from lifecycle event",
		zap.String("request_id", event.RequestID),
		zap.String("event_type", event.EventType),
		zap.String("aggregate_id", event.AggregateID),
		zap.String("sede", event.Sede),
	)
}

func refreshWithRetry(
	ctx context.Context,
	refresher Refresher,
	log *zap.Logger,
	event events.LifecycleEvent,
) error {
	var err error
	for attempt := 1; attempt <= maxRefreshAttempts; attempt++ {
		if err = refresher.Refresh(ctx, event.Sede); err == nil {
			return nil
		}
		if attempt == maxRefreshAttempts {
			break
		}

		wait := refreshBackoff(attempt)
		log.Warn("refresh failed, retrying",
			zap.String("sede", event.Sede),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
