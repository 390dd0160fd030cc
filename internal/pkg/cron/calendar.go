package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/holiday"
)

// HolidayLookup is the slice of the holiday repository the calendar needs.
type HolidayLookup interface {
	GetByDate(ctx context.Context, date time.Time) (*holiday.PublicHoliday, error)
}

// Report send hours, 24h clock, clinic local time.
const (
	sendHourMonThu  = 22
	sendHourFri     = 20
	sendHourWeekend = 18
	sendHourHoliday = 14
)

// Calendar maps a working day to the hour the daily attendance report goes
// out. A registered public holiday overrides the weekday hour with an
// earlier one.
type Calendar struct {
	holidays HolidayLookup
}

func NewCalendar(holidays HolidayLookup) *Calendar {
	return &Calendar{holidays: holidays}
}

// SendTime returns the dispatch instant for the given date. A failed holiday
// lookup falls back to the weekday hour so scheduling never stalls.
func (c *Calendar) SendTime(ctx context.Context, date time.Time) time.Time {
	day := dateOf(date)

	hol, err := c.holidays.GetByDate(ctx, day)
	if err != nil {
		slog.Warn("Holiday lookup failed, using weekday send hour", "date", day.Format("2006-01-02"), "error", err)
		hol = nil
	}

	hour := weekdaySendHour(day.Weekday())
	if hol != nil {
		hour = sendHourHoliday
	}

	return day.Add(time.Duration(hour) * time.Hour)
}

// NextFireTime computes the next dispatch instant strictly after now: today's
// send time if it is still ahead, otherwise tomorrow's. Recomputing from the
// current instant on every call makes restarts self-healing.
func (c *Calendar) NextFireTime(ctx context.Context, now time.Time) time.Time {
	today := c.SendTime(ctx, now)
	if today.After(now) {
		return today
	}
	return c.SendTime(ctx, now.AddDate(0, 0, 1))
}

func weekdaySendHour(day time.Weekday) int {
	switch day {
	case time.Friday:
		return sendHourFri
	case time.Saturday, time.Sunday:
		return sendHourWeekend
	default:
		return sendHourMonThu
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
