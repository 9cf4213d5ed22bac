// Package analytics computes care rollups on demand from the event log and
// the delivery history. Nothing here is stored; a compensating event or a late
// acknowledgement is reflected the next time a rollup is read.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/plant-care/internal/model"
)

// Period is the unit a streak is counted in.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod converts a wire value into a Period.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Adherence is the share of resolved reminders the user acknowledged.
type Adherence struct {
	Acknowledged int     `json:"acknowledged"`
	Resolved     int     `json:"resolved"`
	Rate         float64 `json:"rate"` // 0 when nothing was resolved
}

// Streak counts consecutive periods in which every resolved reminder was
// acknowledged.
type Streak struct {
	Period  Period `json:"period"`
	Current int    `json:"current"`
	Longest int    `json:"longest"`
}

// Summary is a rollup of one calendar range.
type Summary struct {
	From      time.Time                    `json:"from"`
	To        time.Time                    `json:"to"`
	Events    map[model.ActionKind]int     `json:"events"`
	Outcomes  map[model.DeliveryStatus]int `json:"outcomes"`
	Adherence Adherence                    `json:"adherence"`
}

// Photo is an archived photo reference taken from the log.
type Photo struct {
	EventID    uuid.UUID        `json:"event_id"`
	PlantID    uuid.UUID        `json:"plant_id"`
	Kind       model.ActionKind `json:"kind"`
	OccurredAt time.Time        `json:"occurred_at"`
	PhotoRef   string           `json:"photo_ref"`
	Note       string           `json:"note,omitempty"`
}

// UserStats is the per-user overview shown by the bot.
type UserStats struct {
	TotalPlants    int        `json:"total_plants"`
	ActivePlants   int        `json:"active_plants"`
	TotalWaterings int        `json:"total_waterings"`
	FirstPlantAt   *time.Time `json:"first_plant_at,omitempty"`
	LastWateringAt *time.Time `json:"last_watering_at,omitempty"`
}

// ComputeAdherence rates the resolved deliveries. Snoozed rows are
// rescheduled into a later delivery and cancelled rows have no outcome, so
// neither is counted.
func ComputeAdherence(deliveries []model.ReminderDelivery) Adherence {
	var a Adherence
	for _, d := range deliveries {
		if !d.Status.Resolved() {
			continue
		}
		a.Resolved++
		if d.Status == model.StatusAcknowledged {
			a.Acknowledged++
		}
	}

	if a.Resolved > 0 {
		a.Rate = float64(a.Acknowledged) / float64(a.Resolved)
	}

	return a
}

// ComputeStreak walks the resolved deliveries period by period in loc.
// Periods without a resolved delivery neither extend nor break a streak.
// The current streak ends at the latest period that has one, up to now.
func ComputeStreak(deliveries []model.ReminderDelivery, period Period, loc *time.Location, now time.Time) Streak {
	s := Streak{Period: period}

	ok := make(map[time.Time]bool)
	for _, d := range deliveries {
		if !d.Status.Resolved() || d.DueAt.After(now) {
			continue
		}

		start := PeriodStart(d.DueAt, period, loc)
		prev, seen := ok[start]
		ok[start] = (prev || !seen) && d.Status == model.StatusAcknowledged
	}

	starts := make([]time.Time, 0, len(ok))
	for start := range ok {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	run := 0
	for _, start := range starts {
		if ok[start] {
			run++
		} else {
			run = 0
		}
		if run > s.Longest {
			s.Longest = run
		}
	}
	s.Current = run

	return s
}

// PeriodStart returns the beginning of the period containing t in loc. Weeks
// start on Monday.
func PeriodStart(t time.Time, period Period, loc *time.Location) time.Time {
	local := t.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	switch period {
	case PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case PeriodMonth:
		return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return day
	}
}

// Summarize builds the rollup of [from, to). Callers pass the events and
// deliveries of that range.
func Summarize(events []model.CareEvent, deliveries []model.ReminderDelivery, from, to time.Time) Summary {
	s := Summary{
		From:     from,
		To:       to,
		Events:   make(map[model.ActionKind]int),
		Outcomes: make(map[model.DeliveryStatus]int),
	}

	for _, e := range events {
		s.Events[e.Kind]++
	}
	for _, d := range deliveries {
		s.Outcomes[d.Status]++
	}
	s.Adherence = ComputeAdherence(deliveries)

	return s
}

// MonthRange returns the first instant of the month and of the next one in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// YearRange returns the first instant of the year and of the next one in loc.
func YearRange(year int, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(1, 0, 0)
}

// PhotoArchive lists the events that carry a photo, newest first.
func PhotoArchive(events []model.CareEvent) []Photo {
	var photos []Photo
	for _, e := range events {
		if e.PhotoRef == "" {
			continue
		}
		photos = append(photos, Photo{
			EventID:    e.ID,
			PlantID:    e.PlantID,
			Kind:       e.Kind,
			OccurredAt: e.OccurredAt,
			PhotoRef:   e.PhotoRef,
			Note:       e.Note,
		})
	}

	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].OccurredAt.After(photos[j].OccurredAt)
	})

	return photos
}

// ComputeUserStats summarises a user's inventory and watering history.
func ComputeUserStats(plants []model.Plant, events []model.CareEvent) UserStats {
	var st UserStats

	for _, p := range plants {
		st.TotalPlants++
		if !p.Archived() {
			st.ActivePlants++
		}
		if st.FirstPlantAt == nil || p.AcquiredAt.Before(*st.FirstPlantAt) {
			at := p.AcquiredAt
			st.FirstPlantAt = &at
		}
	}

	for _, e := range events {
		if e.Kind != model.ActionWater {
			continue
		}
		st.TotalWaterings++
		if st.LastWateringAt == nil || e.OccurredAt.After(*st.LastWateringAt) {
			at := e.OccurredAt
			st.LastWateringAt = &at
		}
	}

	return st
}
