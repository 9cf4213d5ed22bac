package schedule

import (
	"time"

	"github.com/aliskhannn/plant-care/internal/model"
)

// ReleaseTime returns the instant a reminder for due may be handed to the user.
//
// User-local settings only move the hand-off: a due earlier in the local day than
// the preferred reminder time waits for it, and anything inside quiet hours waits
// until they end. The due timestamp itself is never changed.
func ReleaseTime(due time.Time, prefs model.Preferences) time.Time {
	loc := prefs.Location()
	local := due.In(loc)

	if h, m, ok := parseClock(prefs.ReminderTime); ok {
		preferred := time.Date(local.Year(), local.Month(), local.Day(), h, m, 0, 0, loc)
		if local.Before(preferred) {
			local = preferred
		}
	}

	if end, ok := quietUntil(local, prefs.QuietHoursStart, prefs.QuietHoursEnd); ok {
		local = end
	}

	return local.UTC()
}

// quietUntil reports whether t falls in the quiet period and when that period ends.
func quietUntil(t time.Time, start, end string) (time.Time, bool) {
	sh, sm, ok := parseClock(start)
	if !ok {
		return time.Time{}, false
	}
	eh, em, ok := parseClock(end)
	if !ok {
		return time.Time{}, false
	}

	s := sh*60 + sm
	e := eh*60 + em
	cur := t.Hour()*60 + t.Minute()
	endToday := time.Date(t.Year(), t.Month(), t.Day(), eh, em, 0, 0, t.Location())

	switch {
	case s == e:
		return time.Time{}, false
	case s < e:
		if cur >= s && cur < e {
			return endToday, true
		}
	default:
		// overnight window, e.g. 22:00-07:00
		if cur >= s {
			return endToday.AddDate(0, 0, 1), true
		}
		if cur < e {
			return endToday, true
		}
	}

	return time.Time{}, false
}

func parseClock(s string) (int, int, bool) {
	if s == "" {
		return 0, 0, false
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, false
	}

	return t.Hour(), t.Minute(), true
}
