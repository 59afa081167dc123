package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"doctorsportal/models"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mailer delivers patient-facing booking mail.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, b models.Booking) error
}

// Sender is the subset of the SendGrid client used by SendGridMailer.
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer sends booking mail through SendGrid.
type SendGridMailer struct {
	client    Sender
	fromName  string
	fromEmail string
	logger    *zap.Logger
}

func NewSendGridMailer(apiKey, fromName, fromEmail string, logger *zap.Logger) *SendGridMailer {
	return NewSendGridMailerWithSender(sendgrid.NewSendClient(apiKey), fromName, fromEmail, logger)
}

func NewSendGridMailerWithSender(client Sender, fromName, fromEmail string, logger *zap.Logger) *SendGridMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SendGridMailer{client: client, fromName: fromName, fromEmail: fromEmail, logger: logger}
}

func (m *SendGridMailer) SendBookingConfirmation(ctx context.Context, b models.Booking) error {
	subject, plain, body := ConfirmationContent(b)
	msg := mail.NewSingleEmail(
		mail.NewEmail(m.fromName, m.fromEmail),
		subject,
		mail.NewEmail(b.PatientName, b.Email),
		plain, body,
	)

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send failed for booking %s: %w", b.ID, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	m.logger.Info("booking confirmation sent", zap.String("bookingID", b.ID), zap.Int("status", resp.StatusCode))
	return nil
}

// LogMailer only logs the mail it would have sent. Used when no SendGrid key is configured.
type LogMailer struct {
	Logger *zap.Logger
}

func (m LogMailer) SendBookingConfirmation(_ context.Context, b models.Booking) error {
	subject, _, _ := ConfirmationContent(b)
	if m.Logger != nil {
		m.Logger.Info("booking confirmation (mail disabled)",
			zap.String("bookingID", b.ID), zap.String("to", b.Email), zap.String("subject", subject))
	}
	return nil
}

// ConfirmationContent renders the subject, plain text and HTML body of a booking confirmation.
func ConfirmationContent(b models.Booking) (subject, plain, htmlBody string) {
	subject = fmt.Sprintf("Your appointment for %s is confirmed", b.Treatment)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s,\n\n", b.PatientName)
	fmt.Fprintf(&sb, "Your %s appointment on %s at %s is confirmed.\n", b.Treatment, b.Date, b.Slot)
	if b.Price > 0 {
		fmt.Fprintf(&sb, "Amount due: $%.2f\n", b.Price)
	}
	sb.WriteString("\nSee you soon,\nDoctors Portal")
	plain = sb.String()

	htmlBody = fmt.Sprintf(
		"<p>Hello %s,</p><p>Your <strong>%s</strong> appointment on <strong>%s</strong> at <strong>%s</strong> is confirmed.</p><p>See you soon,<br/>Doctors Portal</p>",
		html.EscapeString(b.PatientName), html.EscapeString(b.Treatment), html.EscapeString(b.Date), html.EscapeString(b.Slot),
	)
	return subject, plain, htmlBody
}
