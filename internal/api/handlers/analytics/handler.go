package analytics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/analytics"
	"github.com/aliskhannn/plant-care/internal/api/params"
	"github.com/aliskhannn/plant-care/internal/api/respond"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/analytics/mock.go -package=mocks
type analyticsService interface {
	Adherence(ctx context.Context, userID int64, from, to time.Time) (analytics.Adherence, error)
	Streak(ctx context.Context, userID int64, period analytics.Period, now time.Time) (analytics.Streak, error)
	MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (analytics.Summary, error)
	YearlySummary(ctx context.Context, userID int64, year int) (analytics.Summary, error)
	PhotoArchive(ctx context.Context, userID int64, from, to time.Time) ([]analytics.Photo, error)
	UserStats(ctx context.Context, userID int64, now time.Time) (analytics.UserStats, error)
}

// Handler serves read-only rollups under /api/users/:user_id/analytics.
type Handler struct {
	service analyticsService
	now     func() time.Time
}

func NewHandler(s analyticsService) *Handler {
	return &Handler{service: s, now: func() time.Time { return time.Now().UTC() }}
}

// Adherence handles GET .../adherence?from=&to=. The default range is the last 30 days.
func (h *Handler) Adherence(c *ginext.Context) {
	userID, from, to, ok := h.userRange(c, 30*24*time.Hour)
	if !ok {
		return
	}

	a, err := h.service.Adherence(c.Request.Context(), userID, from, to)
	if err != nil {
		fail(c, userID, err)
		return
	}

	respond.OK(c.Writer, a)
}

// Streak handles GET .../streak?period=day|week|month.
func (h *Handler) Streak(c *ginext.Context) {
	userID, err := params.UserID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	period, err := analytics.ParsePeriod(c.DefaultQuery("period", string(analytics.PeriodWeek)))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	s, err := h.service.Streak(c.Request.Context(), userID, period, h.now())
	if err != nil {
		fail(c, userID, err)
		return
	}

	respond.OK(c.Writer, s)
}

// Summary handles GET .../summary?year=&month=. Without month the whole year
// is summarised.
func (h *Handler) Summary(c *ginext.Context) {
	userID, err := params.UserID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	now := h.now()

	year, err := params.Int(c, "year", now.Year())
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	month, err := params.Int(c, "month", 0)
	if err != nil || month < 0 || month > 12 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid month"))
		return
	}

	var s analytics.Summary
	if month == 0 {
		s, err = h.service.YearlySummary(c.Request.Context(), userID, year)
	} else {
		s, err = h.service.MonthlySummary(c.Request.Context(), userID, year, time.Month(month))
	}
	if err != nil {
		fail(c, userID, err)
		return
	}

	respond.OK(c.Writer, s)
}

// Photos handles GET .../photos?from=&to=. The default range is all history.
func (h *Handler) Photos(c *ginext.Context) {
	userID, from, to, ok := h.userRange(c, 0)
	if !ok {
		return
	}

	photos, err := h.service.PhotoArchive(c.Request.Context(), userID, from, to)
	if err != nil {
		fail(c, userID, err)
		return
	}

	respond.OK(c.Writer, photos)
}

// Stats handles GET .../stats.
func (h *Handler) Stats(c *ginext.Context) {
	userID, err := params.UserID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	st, err := h.service.UserStats(c.Request.Context(), userID, h.now())
	if err != nil {
		fail(c, userID, err)
		return
	}

	respond.OK(c.Writer, st)
}

// userRange reads the user id and a [from, to) range. A zero span makes the
// default start the beginning of time.
func (h *Handler) userRange(c *ginext.Context, span time.Duration) (int64, time.Time, time.Time, bool) {
	userID, err := params.UserID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return 0, time.Time{}, time.Time{}, false
	}

	to, err := params.Time(c, "to", h.now())
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return 0, time.Time{}, time.Time{}, false
	}

	var def time.Time
	if span > 0 {
		def = to.Add(-span)
	}

	from, err := params.Time(c, "from", def)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return 0, time.Time{}, time.Time{}, false
	}

	if !from.Before(to) {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("from must be before to"))
		return 0, time.Time{}, time.Time{}, false
	}

	return userID, from, to, true
}

func fail(c *ginext.Context, userID int64, err error) {
	if errors.Is(err, plant.ErrUserNotFound) {
		respond.Fail(c.Writer, http.StatusNotFound, err)
		return
	}

	zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to compute analytics")
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
