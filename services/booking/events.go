package booking

import (
	"context"
	"sync"
	"time"

	"doctorsportal/models"

	"go.uber.org/zap"
)

// BookingCreated is published after a booking has been stored.
type BookingCreated struct {
	Booking    models.Booking `json:"booking"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// EventPublisher receives post-commit booking events.
type EventPublisher interface {
	Publish(ctx context.Context, evt BookingCreated) error
}

// Subscriber handles one booking event. Errors are logged by the bus.
type Subscriber func(ctx context.Context, evt BookingCreated) error

type subscription struct {
	name string
	fn   Subscriber
}

// EventBus fans events out to subscribers, each on its own goroutine.
// Publish never blocks on subscriber work and never reports subscriber failures.
type EventBus struct {
	mu     sync.RWMutex
	subs   []subscription
	wg     sync.WaitGroup
	logger *zap.Logger
}

func NewEventBus(logger *zap.Logger) *EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventBus{logger: logger}
}

// Subscribe registers fn under name, which is used in logs.
func (b *EventBus) Subscribe(name string, fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{name: name, fn: fn})
}

// Publish hands evt to every subscriber. Delivery outlives the request context.
func (b *EventBus) Publish(ctx context.Context, evt BookingCreated) error {
	b.mu.RLock()
	subs := append([]subscription(nil), b.subs...)
	b.mu.RUnlock()

	deliveryCtx := context.WithoutCancel(ctx)
	for _, s := range subs {
		b.wg.Add(1)
		go b.deliver(deliveryCtx, s, evt)
	}
	return nil
}

func (b *EventBus) deliver(ctx context.Context, s subscription, evt BookingCreated) {
	defer b.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("booking event subscriber panicked",
				zap.String("subscriber", s.name), zap.String("bookingID", evt.Booking.ID), zap.Any("panic", r))
		}
	}()

	if err := s.fn(ctx, evt); err != nil {
		b.logger.Error("booking event subscriber failed",
			zap.String("subscriber", s.name), zap.String("bookingID", evt.Booking.ID), zap.Error(err))
	}
}

// Wait blocks until all in-flight deliveries finish.
func (b *EventBus) Wait() {
	b.wg.Wait()
}
