package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	memoryRepo "doctorsportal/database/repository/memory"
	"doctorsportal/models"
	"doctorsportal/services/auth"
	"doctorsportal/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIntents struct {
	cents    int64
	currency string
	err      error
}

func (f *fakeIntents) CreateIntent(_ context.Context, cents int64, currency string) (string, error) {
	f.cents, f.currency = cents, currency
	return "pi_secret", f.err
}

func identity(t *testing.T, email string) auth.Identity {
	t.Helper()
	tokens, err := auth.NewTokenService("secret", time.Hour)
	require.NoError(t, err)
	raw, err := tokens.Issue(email)
	require.NoError(t, err)
	id, err := tokens.Verify("Bearer " + raw)
	require.NoError(t, err)
	return id
}

func TestCreateIntent(t *testing.T) {
	intents := &fakeIntents{}
	svc := &DefaultPaymentService{Intents: intents}

	secret, err := svc.CreateIntent(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_secret", secret)
	assert.EqualValues(t, 1999, intents.cents)
	assert.Equal(t, "usd", intents.currency)

	_, err = svc.CreateIntent(context.Background(), 0)
	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestRecord(t *testing.T) {
	ctx := context.Background()
	store := memoryRepo.NewStore()
	b := models.Booking{ID: "b1", Email: "a@x.com", Treatment: "Cleaning", Date: "d", Slot: "9am"}
	require.NoError(t, store.Bookings().Create(ctx, &b))

	svc := &DefaultPaymentService{Payments: store.Payments(), Bookings: store.Bookings()}
	req := models.PaymentRequest{BookingID: "b1", TransactionID: "txn_1", Amount: 60}

	_, err := svc.Record(ctx, identity(t, "b@y.com"), req)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	_, err = svc.Record(ctx, identity(t, "a@x.com"), models.PaymentRequest{BookingID: "nope", TransactionID: "t", Amount: 1})
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)

	p, err := svc.Record(ctx, identity(t, "a@x.com"), req)
	require.NoError(t, err)
	assert.Equal(t, "txn_1", p.TransactionID)
	assert.Len(t, store.Payments().All(), 1)

	stored, err := store.Bookings().GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, stored.Paid)
	assert.Equal(t, "txn_1", stored.TransactionID)
}
