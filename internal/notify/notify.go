// Package notify hands reminder batches to the user's notification channel.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/model"
)

// ErrChannelUnavailable is returned when a batch could not be handed off.
var ErrChannelUnavailable = errors.New("notification channel unavailable")

//go:generate mockgen -source=notify.go -destination=../mocks/notify/mock.go -package=mocks

// Channel is the outbound side of the dispatcher. A nil error means the batch
// was accepted by the channel.
type Channel interface {
	SendReminder(ctx context.Context, batch model.ReminderBatch) error
}

// Sender delivers a rendered message to one address.
type Sender interface {
	Send(ctx context.Context, to, msg string) error
}

// Direct sends batches straight through the configured senders, keyed by
// channel name ("telegram", "email").
type Direct struct {
	senders  map[string]Sender
	timeout  time.Duration
	strategy retry.Strategy
}

// NewDirect creates a Direct channel. Every send is bounded by timeout and
// retried according to strategy.
func NewDirect(senders map[string]Sender, timeout time.Duration, strategy retry.Strategy) *Direct {
	return &Direct{senders: senders, timeout: timeout, strategy: strategy}
}

// SendReminder renders the batch and sends it with bounded retries.
func (d *Direct) SendReminder(ctx context.Context, batch model.ReminderBatch) error {
	sender, ok := d.senders[batch.Channel]
	if !ok {
		return fmt.Errorf("%w: unknown channel %q", ErrChannelUnavailable, batch.Channel)
	}

	if batch.Address == "" {
		return fmt.Errorf("%w: user %d has no %s address", ErrChannelUnavailable, batch.UserID, batch.Channel)
	}

	msg := Render(batch)

	err := retry.Do(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}

		sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		return sender.Send(sendCtx, batch.Address, msg)
	}, d.strategy)
	if err != nil {
		zlog.Logger.Warn().Err(err).Int64("user_id", batch.UserID).Str("channel", batch.Channel).Msg("failed to send reminder batch")
		return fmt.Errorf("%w: %v", ErrChannelUnavailable, err)
	}

	return nil
}

var actionLabels = map[model.ActionKind]string{
	model.ActionWater: "water",
	model.ActionFeed:  "feed",
}

// Render formats a batch as a plain text message. Due times are shown in the
// user's zone.
func Render(batch model.ReminderBatch) string {
	loc := time.UTC
	if batch.Zone != "" {
		if l, err := time.LoadLocation(batch.Zone); err == nil {
			loc = l
		}
	}

	var b strings.Builder
	if len(batch.Items) == 1 {
		b.WriteString("Time to take care of your plant:\n")
	} else {
		b.WriteString("Time to take care of your plants:\n")
	}

	for _, it := range batch.Items {
		name := it.PlantName
		if name == "" {
			name = "your plant"
		}

		fmt.Fprintf(&b, "- %s %s (due %s)\n", actionLabels[it.Kind], name, it.DueAt.In(loc).Format("02 Jan 15:04"))
	}

	return strings.TrimRight(b.String(), "\n")
}
