package reminder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/cache"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/delivery"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/reminder/mock.go -package=mocks
type batchSender interface {
	SendReminder(ctx context.Context, batch model.ReminderBatch) error
}

type deliveryUpdater interface {
	Transition(ctx context.Context, id uuid.UUID, from, to model.DeliveryStatus, reason string, at time.Time) error
}

// Handler delivers batches consumed from the queue to the user's channel.
type Handler struct {
	sender     batchSender
	deliveries deliveryUpdater
	cache      *cache.StatusCache
}

// NewHandler creates a Handler. The sender owns its retry policy; the cache
// may be nil.
func NewHandler(sender batchSender, deliveries deliveryUpdater, statusCache *cache.StatusCache) *Handler {
	return &Handler{
		sender:     sender,
		deliveries: deliveries,
		cache:      statusCache,
	}
}

// HandleMessage sends the batch once. When the send fails, its items are
// escalated so the user sees the obligations as overdue.
func (h *Handler) HandleMessage(ctx context.Context, batch model.ReminderBatch) {
	zlog.Logger.Info().Int64("user_id", batch.UserID).Int("items", len(batch.Items)).Msg("handle message: got reminder batch")

	err := ctx.Err()
	if err == nil {
		err = h.sender.SendReminder(ctx, batch)
	}

	if err == nil {
		zlog.Logger.Info().Int64("user_id", batch.UserID).Msg("handle message: reminder batch sent")
		return
	}

	zlog.Logger.Error().Err(err).Int64("user_id", batch.UserID).Msg("handle message: reminder batch failed, escalating")

	now := time.Now().UTC()
	for _, item := range batch.Items {
		setErr := h.deliveries.Transition(ctx, item.DeliveryID, model.StatusSent, model.StatusEscalated, model.EscalationDeliveryFailed, now)
		if setErr == nil {
			h.cache.Set(ctx, item.DeliveryID, model.StatusEscalated)
			continue
		}
		if errors.Is(setErr, delivery.ErrStaleTransition) {
			zlog.Logger.Warn().Str("delivery_id", item.DeliveryID.String()).Msg("delivery already left sent state")
			continue
		}

		zlog.Logger.Error().Err(setErr).Str("delivery_id", item.DeliveryID.String()).Msg("failed to escalate delivery")
	}
}
