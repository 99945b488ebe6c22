package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mskim5976-cpu/hr-ai-system/internal/aireport"
	"github.com/mskim5976-cpu/hr-ai-system/internal/events"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle turns employee_created events into stored welcome
// blurbs. Generation failures are not committed so the message is retried;
// a missing employee (deleted before the event was consumed) is skipped.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	reportService aireport.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = reportService.GenerateEmployeeComment(ctx, event.EmployeeID)
		if err != nil {
			if isEmployeeGone(err) {
				log.Warn("employee no longer exists, skipping welcome blurb",
					zap.String("employee_id", event.EmployeeID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("generate welcome blurb failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("welcome blurb stored from employee_created event",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

func isEmployeeGone(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeNotFound
}
