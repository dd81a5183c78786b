package query

import (
	"time"

	"remindtrack/internal/domain/constant"
)

// Normalizer aligns caller-supplied calendar dates with the UTC instants the
// record store persists. A calendar date is read in the normalizer's
// location, so a writer in that location and a reader asking for the same
// date agree on the instant.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer returns a Normalizer for loc. A nil loc means UTC.
func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return Normalizer{loc: loc}
}

// Location returns the location calendar dates are read in.
func (n Normalizer) Location() *time.Location {
	if n.loc == nil {
		return time.UTC
	}
	return n.loc
}

// ToUTC returns the UTC instant of local midnight on date's calendar day.
func (n Normalizer) ToUTC(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, n.Location()).UTC()
}

// EndOfDayUTC returns the UTC instant of 23:59:59.999 local on date's
// calendar day.
func (n Normalizer) EndOfDayUTC(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), n.Location()).UTC()
}

// Today returns the calendar date of now in the normalizer's location.
func (n Normalizer) Today(now time.Time) time.Time {
	return calendarDate(now.In(n.Location()))
}

// Window builds the normalized query window. Either bound may be nil.
func (n Normalizer) Window(startDate, endDate *time.Time) Window {
	var w Window
	if startDate != nil {
		start := n.ToUTC(*startDate)
		w.Start = &start
		w.startDay = calendarDate(*startDate)
	}
	if endDate != nil {
		end := n.EndOfDayUTC(*endDate)
		w.End = &end
		w.endDay = calendarDate(*endDate)
	}
	return w
}

// Window is an optional [Start, End] range of UTC instants. Start is local
// midnight of the first day; End is the last millisecond of the last day.
type Window struct {
	Start *time.Time
	End   *time.Time

	startDay time.Time
	endDay   time.Time
}

// Bounded reports whether both bounds are present.
func (w Window) Bounded() bool {
	return w.Start != nil && w.End != nil
}

// Weekdays returns the weekdays a day-of-week reminder may fall on to be in
// the window. An unbounded window allows all seven.
func (w Window) Weekdays() []constant.RecurrenceDay {
	if !w.Bounded() {
		days := make([]constant.RecurrenceDay, len(constant.AllRecurrenceDays))
		copy(days, constant.AllRecurrenceDays)
		return days
	}
	return WeekdaysBetween(w.startDay, w.endDay)
}

// WeekdaysBetween lists the distinct weekdays of the calendar days from start
// to end inclusive, in the order first encountered. Enumeration stops as soon
// as all seven are seen.
func WeekdaysBetween(start, end time.Time) []constant.RecurrenceDay {
	start, end = calendarDate(start), calendarDate(end)
	var seen [7]bool
	days := make([]constant.RecurrenceDay, 0, 7)
	for d := start; !d.After(end) && len(days) < 7; d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if seen[wd] {
			continue
		}
		seen[wd] = true
		days = append(days, constant.DayFromWeekday(wd))
	}
	return days
}

// calendarDate drops the time of day, keeping the date as read in t's own
// location.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
