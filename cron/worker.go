package cron

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/config"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the asynq connection for the mail queue database.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ConfirmationWorker processes queued booking confirmation mail.
type ConfirmationWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewConfirmationWorker wires the task handler; call Start to begin consuming.
func NewConfirmationWorker(opt asynq.RedisClientOpt, mailer notification.Mailer, logger *zap.Logger) *ConfirmationWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
		Logger: logger.Sugar(),
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, HandleConfirmationTask(mailer, logger))
	return &ConfirmationWorker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background, retrying startup a few times.
func (w *ConfirmationWorker) Start() {
	go func() {
		w.logger.Info("starting confirmation worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			w.logger.Error("confirmation worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				w.logger.Error("confirmation worker gave up; confirmations stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *ConfirmationWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleConfirmationTask decodes a confirmation task and hands it to the mailer.
// Malformed payloads are skipped so they are not retried forever.
func HandleConfirmationTask(mailer notification.Mailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.DecodeConfirmation(task)
		if err != nil {
			logger.Error("invalid confirmation payload", zap.Error(err))
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		if p.Booking.Email == "" {
			logger.Warn("confirmation task without recipient", zap.String("bookingID", p.Booking.ID))
			return nil
		}

		if err := mailer.SendBookingConfirmation(ctx, p.Booking); err != nil {
			logger.Error("failed to send booking confirmation", zap.String("bookingID", p.Booking.ID), zap.Error(err))
			return err
		}
		return nil
	}
}
