package cron

import (
	"context"
	"fmt"

	"doctorsportal/services/booking"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
)

// Enqueuer is the subset of *asynq.Client used by the outbox.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ConfirmationOutbox returns an event bus subscriber that queues a confirmation mail per booking.
func ConfirmationOutbox(client Enqueuer) booking.Subscriber {
	return func(ctx context.Context, evt booking.BookingCreated) error {
		task, err := tasks.NewConfirmationTask(evt.Booking)
		if err != nil {
			return fmt.Errorf("build confirmation task: %w", err)
		}
		if _, err := client.EnqueueContext(ctx, task); err != nil {
			return fmt.Errorf("enqueue confirmation task: %w", err)
		}
		return nil
	}
}

// DirectMailer returns a subscriber that mails inline on the bus goroutine. Used when Redis is disabled.
func DirectMailer(mailer notification.Mailer) booking.Subscriber {
	return func(ctx context.Context, evt booking.BookingCreated) error {
		return mailer.SendBookingConfirmation(ctx, evt.Booking)
	}
}
