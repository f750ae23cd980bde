package mail

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/fadehouse/fadehouse-api/internal/config"
	"github.com/fadehouse/fadehouse-api/internal/httperr"
)

const sendTimeout = 10 * time.Second

// Client relays transactional mail over SMTP. One message per call, no
// queueing and no retries; the caller decides what a failure means.
type Client struct {
	host     string
	port     int
	username string
	password string
	from     string
	enabled  bool
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
		enabled:  cfg.MailEnabled,
	}
}

// Confirmation carries the booking-confirmation payload.
type Confirmation struct {
	To              string
	CustomerName    string
	ServiceName     string
	BarberName      string
	AppointmentDate string
	AppointmentTime string
	Price           string
}

func (c *Client) SendConfirmation(ctx context.Context, m Confirmation) error {
	if !c.enabled {
		return httperr.ErrBusiness("mail_disabled")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", "Your appointment is confirmed")
	msg.SetBody("text/plain", confirmationBody(m))

	d := gomail.NewDialer(c.host, c.port, c.username, c.password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	wait := sendTimeout
	if dl, ok := ctx.Deadline(); ok {
		if until := time.Until(dl); until > 0 && until < wait {
			wait = until
		}
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

func confirmationBody(m Confirmation) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour %s with %s is confirmed for %s at %s.\nPrice: %s\n\nSee you soon!\n",
		m.CustomerName,
		m.ServiceName,
		m.BarberName,
		m.AppointmentDate,
		m.AppointmentTime,
		m.Price,
	)
}
