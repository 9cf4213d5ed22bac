package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/api/dto"
	"github.com/aliskhannn/plant-care/internal/api/params"
	"github.com/aliskhannn/plant-care/internal/api/respond"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
	"github.com/aliskhannn/plant-care/internal/service/care"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/user/mock.go -package=mocks
type userService interface {
	UpsertUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	DeactivateUser(ctx context.Context, id int64) error
}

type Handler struct {
	service   userService
	validator *validator.Validate
}

func NewHandler(s userService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Upsert handles PUT /api/users/:user_id.
func (h *Handler) Upsert(c *ginext.Context) {
	id, err := params.UserID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	var req dto.UserRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	enabled := true
	if req.RemindersEnabled != nil {
		enabled = *req.RemindersEnabled
	}

	u, err := h.service.UpsertUser(c.Request.Context(), model.User{
		ID:       id,
		Username: req.Username,
		Preferences: model.Preferences{
			Timezone:         req.Timezone,
			QuietHoursStart:  req.QuietHoursStart,
			QuietHoursEnd:    req.QuietHoursEnd,
			ReminderTime:     req.ReminderTime,
			RemindersEnabled: enabled,
			Channel:          req.Channel,
			Address:          req.Address,
		},
	})
	if err != nil {
		if errors.Is(err, care.ErrInvalidPreferences) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Int64("user_id", id).Msg("failed to upsert user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, u)
}

// Get handles GET /api/users/:user_id.
func (h *Handler) Get(c *ginext.Context) {
	id, err := params.UserID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	u, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, plant.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, err)
			return
		}

		zlog.Logger.Error().Err(err).Int64("user_id", id).Msg("failed to get user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, u)
}

// Deactivate handles DELETE /api/users/:user_id.
func (h *Handler) Deactivate(c *ginext.Context) {
	id, err := params.UserID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.DeactivateUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, plant.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, err)
			return
		}

		zlog.Logger.Error().Err(err).Int64("user_id", id).Msg("failed to deactivate user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "user deactivated")
}
