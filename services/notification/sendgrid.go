package notification

import (
	"context"
	"fmt"

	"sweeply/models"
	"sweeply/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer implements Mailer using SendGrid.
type SendGridMailer struct {
	APIKey   string
	From     string
	FromName string
}

// NewSendGridMailer creates a Mailer backed by SendGrid.
func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{APIKey: apiKey, From: from, FromName: "Sweeply"}
}

// SendBookingConfirmation emails the customer that their booking is confirmed.
func (m *SendGridMailer) SendBookingConfirmation(ctx context.Context, booking *models.BookingDraft) error {
	subject := "Your cleaning is booked"
	body := fmt.Sprintf(
		"Thanks for booking with Sweeply!\n\nBooking %s is confirmed for %s at %s. Total charged: $%.2f.\n",
		booking.ID, booking.Date, booking.StartTime, booking.TotalPrice,
	)
	return m.send(ctx, booking, subject, body)
}

// SendBookingReminder emails the customer the day before their booking.
func (m *SendGridMailer) SendBookingReminder(ctx context.Context, booking *models.BookingDraft) error {
	subject := "Your cleaning is tomorrow"
	body := fmt.Sprintf(
		"A reminder from Sweeply: booking %s is scheduled for %s at %s.\n",
		booking.ID, booking.Date, booking.StartTime,
	)
	return m.send(ctx, booking, subject, body)
}

func (m *SendGridMailer) send(ctx context.Context, booking *models.BookingDraft, subject, body string) error {
	if booking.CustomerEmail == "" {
		return fmt.Errorf("booking %s has no customer email", booking.ID)
	}

	from := mail.NewEmail(m.FromName, m.From)
	to := mail.NewEmail("", booking.CustomerEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(m.APIKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return &utils.UpstreamError{System: "sendgrid", Err: err}
	}
	if resp.StatusCode >= 400 {
		return &utils.UpstreamError{System: "sendgrid", Err: fmt.Errorf("status %d: %s", resp.StatusCode, resp.Body)}
	}
	return nil
}
