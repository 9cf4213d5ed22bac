// Package telegram provides a simple client for sending messages via the
// Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.telegram.org"

// Client represents a Telegram client used to send reminders.
type Client struct {
	token  string        // bot token for authentication
	client *resty.Client // HTTP client used to make requests
}

// NewClient creates a new Telegram Client with the given bot token. Every
// request is bounded by timeout.
func NewClient(token string, timeout time.Duration) *Client {
	return &Client{
		token: token,
		client: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(timeout),
	}
}

// WithBaseURL points the client at another Bot API host.
func (c *Client) WithBaseURL(url string) *Client {
	c.client.SetBaseURL(url)
	return c
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"` // chat id to send message to
	Text   string `json:"text"`    // message text
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send sends a message to the specified Telegram chat ID.
func (c *Client) Send(ctx context.Context, to, msg string) error {
	var result apiResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{ChatID: to, Text: msg}).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("/bot%s/sendMessage", c.token))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	if resp.IsError() || !result.OK {
		return fmt.Errorf("telegram API error: %s %s", resp.Status(), result.Description)
	}

	return nil
}
