// Package email sends rendered reminders over SMTP.
package email

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"gopkg.in/mail.v2"
)

const subject = "Plant care reminder"

// Client delivers plain-text reminders with an HTML alternative.
type Client struct {
	from   string
	dialer *mail.Dialer
}

// NewClient creates an SMTP client. A zero timeout keeps the library default.
func NewClient(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Client {
	dialer := mail.NewDialer(smtpHost, smtpPort, username, password)
	if timeout > 0 {
		dialer.Timeout = timeout
	}

	return &Client{from: from, dialer: dialer}
}

// Send delivers msg to the address to.
func (c *Client) Send(ctx context.Context, to, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.dialer.DialAndSend(c.compose(to, msg)); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}

func (c *Client) compose(to, msg string) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetDateHeader("Date", time.Now())

	m.SetBody("text/plain", msg)
	m.AddAlternative("text/html", toHTML(msg))

	return m
}

// toHTML renders each line of the plain reminder as a paragraph.
func toHTML(msg string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(msg), "\n") {
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</p>")
	}

	return b.String()
}
