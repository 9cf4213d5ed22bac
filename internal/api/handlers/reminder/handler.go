package reminder

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/api/params"
	"github.com/aliskhannn/plant-care/internal/api/respond"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/delivery"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
	"github.com/aliskhannn/plant-care/internal/service/care"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks
type reminderService interface {
	AcknowledgeReminder(ctx context.Context, id uuid.UUID) (model.CareEvent, error)
	SnoozeReminder(ctx context.Context, id uuid.UUID) (care.Snoozed, error)
	GetDeliveryStatus(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, error)
}

// Handler serves the user's answers to reminders.
type Handler struct {
	service reminderService
}

func NewHandler(s reminderService) *Handler {
	return &Handler{service: s}
}

// Acknowledge handles POST /api/reminders/:id/ack.
func (h *Handler) Acknowledge(c *ginext.Context) {
	id, err := params.UUID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	e, err := h.service.AcknowledgeReminder(c.Request.Context(), id)
	if err != nil {
		fail(c, id, err)
		return
	}

	respond.OK(c.Writer, e)
}

// Snooze handles POST /api/reminders/:id/snooze.
func (h *Handler) Snooze(c *ginext.Context) {
	id, err := params.UUID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	res, err := h.service.SnoozeReminder(c.Request.Context(), id)
	if err != nil {
		fail(c, id, err)
		return
	}

	respond.OK(c.Writer, map[string]interface{}{
		"delivery":  res.Delivery,
		"remind_at": res.RemindAt,
	})
}

// GetStatus handles GET /api/reminders/:id.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, err := params.UUID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	status, err := h.service.GetDeliveryStatus(c.Request.Context(), id)
	if err != nil {
		fail(c, id, err)
		return
	}

	respond.OK(c.Writer, status)
}

// fail maps stale-state errors to 409 so the bot can tell the user the
// reminder is no longer open.
func fail(c *ginext.Context, id uuid.UUID, err error) {
	switch {
	case errors.Is(err, delivery.ErrDeliveryNotFound):
		zlog.Logger.Warn().Interface("id", id).Err(err).Msg("reminder not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
	case errors.Is(err, care.ErrExpiredDelivery),
		errors.Is(err, care.ErrNotActionable),
		errors.Is(err, care.ErrSnoozeLimitReached),
		errors.Is(err, plant.ErrPlantArchived):
		respond.Fail(c.Writer, http.StatusConflict, err)
	default:
		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to process reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}
