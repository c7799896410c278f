package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-shiftplan/internal/apiclient"
	"go-shiftplan/internal/config"
	"go-shiftplan/internal/events"
	"go-shiftplan/internal/hours"
	"go-shiftplan/internal/messaging/kafka/consumer"
	"go-shiftplan/internal/planilla"
	"go-shiftplan/internal/shared/connection"
	"go-shiftplan/internal/workspace"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const planillaConsumerGroup = "go-shiftplan-planilla"

// RunConsumer keeps the planilla cache warm: each lifecycle event reloads
// the sede through the HTTP API and recomputes its schedules.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	policy, err := hours.ParsePolicy(cfg.HoursPolicy)
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	client := apiclient.New(cfg.APIBaseURL, apiclient.WithLogger(logger))
	coord := workspace.New(client, policy, logger)
	warmer := workspace.NewCacheWarmer(coord, planilla.NewRedisCache(rdb), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupTopics:    events.Topics,
		GroupID:        planillaConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLifecycle(ctx, reader, warmer, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
