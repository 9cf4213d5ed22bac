package plant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/api/dto"
	"github.com/aliskhannn/plant-care/internal/api/params"
	"github.com/aliskhannn/plant-care/internal/api/respond"
	"github.com/aliskhannn/plant-care/internal/model"
	plantrepo "github.com/aliskhannn/plant-care/internal/repository/plant"
	"github.com/aliskhannn/plant-care/internal/schedule"
	"github.com/aliskhannn/plant-care/internal/service/care"
)

// careService is the part of the care service the plant endpoints use.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/plant/mock.go -package=mocks
type careService interface {
	RegisterPlant(ctx context.Context, r care.Registration) (model.Plant, error)
	UpdateCareProfile(ctx context.Context, id uuid.UUID, cp care.CareProfile) (model.Plant, error)
	ArchivePlant(ctx context.Context, id uuid.UUID) error
	PlantView(ctx context.Context, id uuid.UUID) (model.PlantView, error)
	ListPlantViews(ctx context.Context, userID int64) ([]model.PlantView, error)
	RecordCareAction(ctx context.Context, a care.Action) (model.CareEvent, error)
}

// Handler serves the plant inventory and the care log.
type Handler struct {
	service   careService
	validator *validator.Validate
}

func NewHandler(s careService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Register handles POST /api/users/:user_id/plants.
func (h *Handler) Register(c *ginext.Context) {
	userID, err := params.UserID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	var req dto.RegisterPlantRequest
	if !h.decode(c, &req) {
		return
	}

	acquired, err := parseTime(req.AcquiredAt)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid acquired_at format"))
		return
	}

	p, err := h.service.RegisterPlant(c.Request.Context(), care.Registration{
		UserID:           userID,
		Species:          req.Species,
		Nickname:         req.Nickname,
		AcquiredAt:       acquired,
		WateringInterval: req.WateringInterval,
		FeedingInterval:  req.FeedingInterval,
		PhotoRef:         req.PhotoRef,
		HealthState:      model.HealthState(req.HealthState),
	})
	if err != nil {
		fail(c, err, "failed to register plant")
		return
	}

	respond.Created(c.Writer, p)
}

// List handles GET /api/users/:user_id/plants.
func (h *Handler) List(c *ginext.Context) {
	userID, err := params.UserID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	views, err := h.service.ListPlantViews(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "failed to list plants")
		return
	}

	respond.OK(c.Writer, views)
}

// Get handles GET /api/plants/:id.
func (h *Handler) Get(c *ginext.Context) {
	id, err := params.UUID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	view, err := h.service.PlantView(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to get plant")
		return
	}

	respond.OK(c.Writer, view)
}

// Update handles PUT /api/plants/:id.
func (h *Handler) Update(c *ginext.Context) {
	id, err := params.UUID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	var req dto.UpdatePlantRequest
	if !h.decode(c, &req) {
		return
	}

	p, err := h.service.UpdateCareProfile(c.Request.Context(), id, care.CareProfile{
		Species:          req.Species,
		Nickname:         req.Nickname,
		WateringInterval: req.WateringInterval,
		FeedingInterval:  req.FeedingInterval,
		PhotoRef:         req.PhotoRef,
		HealthState:      model.HealthState(req.HealthState),
	})
	if err != nil {
		fail(c, err, "failed to update plant")
		return
	}

	respond.OK(c.Writer, p)
}

// Archive handles DELETE /api/plants/:id.
func (h *Handler) Archive(c *ginext.Context) {
	id, err := params.UUID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.ArchivePlant(c.Request.Context(), id); err != nil {
		fail(c, err, "failed to archive plant")
		return
	}

	respond.OK(c.Writer, "plant archived")
}

// RecordAction handles POST /api/plants/:id/events.
func (h *Handler) RecordAction(c *ginext.Context) {
	id, err := params.UUID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	var req dto.CareActionRequest
	if !h.decode(c, &req) {
		return
	}

	occurred, err := parseTime(req.OccurredAt)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid occurred_at format"))
		return
	}

	e, err := h.service.RecordCareAction(c.Request.Context(), care.Action{
		PlantID:    id,
		Kind:       model.ActionKind(req.Kind),
		Target:     model.ActionKind(req.Target),
		OccurredAt: occurred,
		Note:       req.Note,
		PhotoRef:   req.PhotoRef,
	})
	if err != nil {
		fail(c, err, "failed to record care action")
		return
	}

	respond.Created(c.Writer, e)
}

func (h *Handler) decode(c *ginext.Context, req interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339, s)
}

func fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, plantrepo.ErrUnknownPlant), errors.Is(err, plantrepo.ErrUserNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, err)
	case errors.Is(err, plantrepo.ErrPlantArchived):
		respond.Fail(c.Writer, http.StatusConflict, err)
	case errors.Is(err, schedule.ErrInvalidScheduleConfig), errors.Is(err, care.ErrInvalidAction):
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}
