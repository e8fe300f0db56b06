package cron

import (
	"context"
	"time"

	"salonadmin/config"
	auditRepo "salonadmin/database/repository/audit"
	"salonadmin/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the asynq connection shared by the audit client and worker.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitAuditWorker runs the audit worker in the background and returns a
// function that stops it.
func InitAuditWorker(repo auditRepo.AuditRepository, logger *zap.Logger) func() {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingAudit, HandleAuditTask(repo, logger))

	go func() {
		logger.Info("Starting audit worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Audit worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Audit worker gave up; mutations will not be audited")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv.Shutdown
}

// HandleAuditTask appends the task's entry to the audit trail.
func HandleAuditTask(repo auditRepo.AuditRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		entry, err := tasks.ParseAuditTask(task)
		if err != nil {
			logger.Error("Dropping invalid audit task", zap.Error(err))
			return asynq.SkipRetry
		}
		if err := repo.Append(ctx, entry); err != nil {
			logger.Warn("Failed to append audit entry", zap.Int64("bookingID", entry.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
