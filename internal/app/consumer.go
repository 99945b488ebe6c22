package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mskim5976-cpu/hr-ai-system/internal/aireport"
	"github.com/mskim5976-cpu/hr-ai-system/internal/assignment"
	"github.com/mskim5976-cpu/hr-ai-system/internal/employee"
	"github.com/mskim5976-cpu/hr-ai-system/internal/events"
	"github.com/mskim5976-cpu/hr-ai-system/internal/llm"
	"github.com/mskim5976-cpu/hr-ai-system/internal/messaging/kafka/consumer"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/connection"
	"github.com/mskim5976-cpu/hr-ai-system/internal/site"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer reads employee lifecycle events and stores a generated
// welcome blurb for every new employee.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	llmClient, err := llm.NewClient()
	if err != nil {
		return err
	}

	reportService := aireport.NewService(
		aireport.NewRepository(gormDB),
		employee.NewRepository(gormDB),
		site.NewRepository(gormDB),
		assignment.NewRepository(gormDB),
		llmClient,
		llmClient.ModelName(),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        "hr-ai-system-welcome-blurbs",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, reader, reportService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
