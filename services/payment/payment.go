package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
	"doctorsportal/services/auth"
	"doctorsportal/services/booking"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentCreator creates a card payment intent and returns its client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

// StripeIntents creates payment intents through the Stripe API.
type StripeIntents struct{}

// NewStripeIntents sets the process-wide Stripe key.
func NewStripeIntents(key string) *StripeIntents {
	stripe.Key = key
	return &StripeIntents{}
}

func (StripeIntents) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: %w", err)
	}
	return pi.ClientSecret, nil
}

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	Record(ctx context.Context, id auth.Identity, req models.PaymentRequest) (*models.Payment, error)
}

type DefaultPaymentService struct {
	Intents  IntentCreator
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// CreateIntent prepares a USD card payment for price, expressed in dollars.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return "", models.NewValidationError("price", "must be positive")
	}
	cents := int64(math.Round(price * 100))
	secret, err := s.Intents.CreateIntent(ctx, cents, string(stripe.CurrencyUSD))
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return secret, nil
}

// Record stores a settled payment and marks the caller's booking as paid.
func (s *DefaultPaymentService) Record(ctx context.Context, id auth.Identity, req models.PaymentRequest) (*models.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	b, err := s.Bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, booking.ErrBookingNotFound
	}
	if b.Email != id.Email() {
		return nil, auth.ErrForbidden
	}

	p := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     b.ID,
		Email:         b.Email,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		CreatedAt:     time.Now(),
	}
	if err := s.Payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	if _, err := s.Bookings.MarkPaid(ctx, b.ID, req.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("payment recorded", zap.String("bookingID", b.ID), zap.String("transactionID", req.TransactionID))
	}
	return p, nil
}
