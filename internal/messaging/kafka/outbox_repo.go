package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-shiftplan/internal/shared/connection"

	"gorm.io/gorm"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

const (
	maxErrorMessageLen = 500
	retryStep          = 15 * time.Second
	maxRetrySteps      = 10
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

// outboxRecord is the row layout of outbox_events.
type outboxRecord struct {
	ID            string `gorm:"primaryKey"`
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       string
	Status        string
	RetryCount    int
	ErrorMessage  *string
	NextRetryAt   *time.Time
	ProcessedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (outboxRecord) TableName() string { return "outbox_events" }

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, retryCount int, reason string) error
}

type outboxRepository struct {
	db  *gorm.DB
	tx  *sql.Tx
	now func() time.Time
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db, now: time.Now}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx, now: r.now}
}

func (r *outboxRepository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(r.db, r.tx).WithContext(ctx)
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if event.Status == "" {
		event.Status = OutboxStatusPending
	}
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	now := r.now().UTC()
	return r.conn(ctx).Create(&outboxRecord{
		ID:            event.ID,
		RequestID:     event.RequestID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Topic:         event.Topic,
		Payload:       string(event.Payload),
		Status:        event.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}).Error
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	var rows []outboxRecord
	err := r.conn(ctx).
		Where("status IN ?", []string{OutboxStatusPending, OutboxStatusFailed}).
		Where("next_retry_at IS NULL OR next_retry_at <= ?", r.now().UTC()).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]OutboxEvent, 0, len(rows))
	for _, row := range rows {
		e := OutboxEvent{
			ID:            row.ID,
			RequestID:     row.RequestID,
			AggregateType: row.AggregateType,
			AggregateID:   row.AggregateID,
			EventType:     row.EventType,
			Topic:         row.Topic,
			Payload:       []byte(row.Payload),
			Status:        row.Status,
			RetryCount:    row.RetryCount,
			NextRetryAt:   row.CreatedAt,
		}
		if row.NextRetryAt != nil {
			e.NextRetryAt = *row.NextRetryAt
		}
		events = append(events, e)
	}

	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	now := r.now().UTC()
	return r.conn(ctx).
		Model(&outboxRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusSent,
			"processed_at":  now,
			"error_message": nil,
			"updated_at":    now,
		}).Error
}

// MarkFailed records a failed publish. retryCount is the count before this
// failure; the next attempt is pushed back linearly, capped at ten steps.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, retryCount int, reason string) error {
	if len(reason) > maxErrorMessageLen {
		reason = reason[:maxErrorMessageLen]
	}

	now := r.now().UTC()
	return r.conn(ctx).
		Model(&outboxRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusFailed,
			"retry_count":   retryCount + 1,
			"error_message": reason,
			"next_retry_at": now.Add(RetryBackoff(retryCount + 1)),
			"updated_at":    now,
		}).Error
}

// RetryBackoff returns the delay before attempt number attempt.
func RetryBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > maxRetrySteps {
		attempt = maxRetrySteps
	}
	return time.Duration(attempt) * retryStep
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
