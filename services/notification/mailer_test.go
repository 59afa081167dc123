package notification

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/models"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (f *fakeSender) SendWithContext(_ context.Context, m *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, m)
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status, Body: "body"}, nil
}

var sample = models.Booking{
	ID: "b1", PatientName: "Ann <A>", Email: "ann@x.com",
	Treatment: "Teeth Orthodontics", Date: "May 10, 2022", Slot: "08.00 AM - 08.30 AM", Price: 45,
}

func TestSendGridMailer_Sends(t *testing.T) {
	sender := &fakeSender{status: 202}
	m := NewSendGridMailerWithSender(sender, "Clinic", "noreply@clinic.com", nil)

	require.NoError(t, m.SendBookingConfirmation(context.Background(), sample))
	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "noreply@clinic.com", msg.From.Address)
	assert.Equal(t, "Your appointment for Teeth Orthodontics is confirmed", msg.Subject)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "ann@x.com", msg.Personalizations[0].To[0].Address)
}

func TestSendGridMailer_Failures(t *testing.T) {
	m := NewSendGridMailerWithSender(&fakeSender{status: 401}, "Clinic", "noreply@clinic.com", nil)
	assert.ErrorContains(t, m.SendBookingConfirmation(context.Background(), sample), "status 401")

	boom := errors.New("boom")
	m = NewSendGridMailerWithSender(&fakeSender{err: boom}, "Clinic", "noreply@clinic.com", nil)
	assert.ErrorIs(t, m.SendBookingConfirmation(context.Background(), sample), boom)
}

func TestConfirmationContent(t *testing.T) {
	_, plain, html := ConfirmationContent(sample)
	assert.Contains(t, plain, "May 10, 2022 at 08.00 AM - 08.30 AM")
	assert.Contains(t, plain, "$45.00")
	assert.Contains(t, html, "Ann &lt;A&gt;")
	assert.NotContains(t, html, "<A>")
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, LogMailer{}.SendBookingConfirmation(context.Background(), sample))
}
